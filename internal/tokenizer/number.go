package tokenizer

import "strings"

// tokeniseNumber dispatches a numeric literal to its hex, octal or
// decimal sub-scanner (tokeniser.py's tokenise_number).
func (t *Tokeniser) tokeniseNumber(s *scanner) ([]byte, error) {
	c := s.peek()
	switch {
	case c == 0:
		return nil, nil
	case c == '&':
		s.read()
		if upperByte(s.peek()) == 'H' {
			return t.tokeniseHex(s)
		}
		return t.tokeniseOct(s)
	case contains(digits+".+-", c):
		return t.tokeniseDec(s)
	}
	return nil, nil
}

// tokeniseHex reads an &H hex literal; hex digits must not be
// interrupted by whitespace (tokeniser.py's _tokenise_hex).
func (t *Tokeniser) tokeniseHex(s *scanner) ([]byte, error) {
	s.read() // the 'H'
	var word strings.Builder
	for contains(hexDigits, s.peek()) {
		word.WriteByte(s.read())
	}
	v, err := t.Values.FromHexLiteral(word.String())
	if err != nil {
		return nil, err
	}
	return v, nil
}

// tokeniseOct reads an optional &O prefix (O is optional: &777 is
// also octal) then octal digits, which may be interrupted by
// whitespace (tokeniser.py's _tokenise_oct).
func (t *Tokeniser) tokeniseOct(s *scanner) ([]byte, error) {
	if upperByte(s.peek()) == 'O' {
		s.read()
	}
	var word strings.Builder
	for contains(octDigits+" ", s.peek()) {
		word.WriteByte(s.read())
	}
	return t.Values.FromOctLiteral(word.String())
}

// tokeniseDec reads a decimal literal with an optional fractional
// part, E/D exponent, leading sign (only valid as the first character
// or right after the exponent marker) and trailing !/# type suffix.
// Mirrors tokeniser.py's _tokenise_dec, including the EL/EQ lookahead
// guard that keeps "5ELSE" and "5EQV" from mis-lexing their "E" as an
// exponent marker.
func (t *Tokeniser) tokeniseDec(s *scanner) ([]byte, error) {
	haveExp := false
	havePoint := false
	var word strings.Builder

scan:
	for {
		c := s.peek()
		if c == 0 {
			break
		}
		upper := upperByte(c)
		switch {
		case c == '.' && !havePoint && !haveExp:
			havePoint = true
			word.WriteByte(s.read())
		case (upper == 'E' || upper == 'D') && !haveExp:
			if upper == 'E' {
				la := upperByte(s.peekAt(1))
				if la == 'L' || la == 'Q' {
					break scan
				}
			}
			haveExp = true
			word.WriteByte(s.read())
		case (c == '-' || c == '+') && lastIsExpOrEmpty(word.String()):
			word.WriteByte(s.read())
		case contains(digits+" ", c):
			word.WriteByte(s.read())
		case (c == '!' || c == '#') && !haveExp:
			word.WriteByte(s.read())
			break scan
		case c == '%':
			s.read()
			break scan
		default:
			break scan
		}
	}

	// Don't claim trailing whitespace: rewind the stream past any blanks
	// accumulated at the end of word, the way tokeniser.py's _tokenise_dec
	// does with ins.seek(-len(word)+len(trimword), 1), so a space between a
	// numeric literal and a following keyword/operator stays in the stream.
	raw := word.String()
	trimmed := strings.TrimRight(raw, " ")
	s.unread(len(raw) - len(trimmed))

	clean := strings.ReplaceAll(trimmed, " ", "")
	v, err := t.Values.FromStr(clean)
	if err != nil {
		return nil, err
	}
	return v.ToToken(), nil
}

func lastIsExpOrEmpty(word string) bool {
	if word == "" {
		return true
	}
	last := upperByte(word[len(word)-1])
	return last == 'E' || last == 'D'
}
