// Package tokenizer implements the component that converts one line
// of ASCII BASIC source into its tokenised byte form (spec.md §4.F):
// keywords and operators become one- or two-byte tokens, numeric
// literals become type-tagged binary tokens, and the line is wrapped
// in the envelope a stored or direct-mode line requires. Grounded on
// gmofishsauce-wut4's asm/lexer.go for the index-cursor scanning style
// and on the original tokeniser.py for the exact state machine.
package tokenizer

import (
	"github.com/marioaugustorama/pcbasic/internal/token"
	"github.com/marioaugustorama/pcbasic/internal/values"
)

// Tokeniser converts ASCII program lines to token bytes. It is
// stateless across calls except for the Values façade it shares with
// the rest of the interpreter (spec.md §5: the tokeniser itself
// carries no per-line state between TokeniseLine calls).
type Tokeniser struct {
	Values *values.Facade
}

// New returns a Tokeniser sharing vals for all numeric/string literal
// conversions.
func New(vals *values.Facade) *Tokeniser {
	return &Tokeniser{Values: vals}
}

// TokeniseLine converts one line of ASCII source into its tokenised
// byte form, including the leading line-number envelope (spec.md §3,
// §4.F).
func (t *Tokeniser) TokeniseLine(line string) ([]byte, error) {
	s := newScanner(line)
	var out []byte

	if s.skip(whitespace) == 0 {
		return out, nil
	}

	env, err := t.tokeniseLineNumber(s)
	if err != nil {
		return nil, err
	}
	out = append(out, env...)

	allowJumpnum := false
	allowNumber := true
	spcOrTab := false

	for {
		c := s.peek()
		switch {
		case c == 0:
			s.read()
			s.readTo("\r")
			return out, nil
		case c == '\r':
			return out, nil
		case contains(whitespace, c):
			out = append(out, s.read())
		case c == '"':
			out = append(out, t.tokeniseLiteral(s)...)
		case allowNumber && allowJumpnum && contains(digits+".", c):
			tok, err := t.tokeniseJumpNumber(s)
			if err != nil {
				return nil, err
			}
			out = append(out, tok...)
		case c == '&' || c == '.' || (allowNumber && !allowJumpnum && contains(digits, c)):
			tok, err := t.tokeniseNumber(s)
			if err != nil {
				return nil, err
			}
			out = append(out, tok...)
		case contains(operators, c):
			s.read()
			tok, _ := token.ToToken(string(c))
			out = append(out, tok...)
			allowNumber = true
		case c == '\'':
			s.read()
			out = append(out, token.DirectLineMarker, token.KWRem, token.OREM)
			out = append(out, t.tokeniseRem(s)...)
		case c == '?':
			s.read()
			out = append(out, token.KWPrint)
			allowNumber = true
		case contains(letters, c):
			wr := t.tokeniseWord(s)
			switch {
			case wr.spelling == "REM" || wr.spelling == "'":
				out = append(out, wr.emitted...)
				out = append(out, t.tokeniseRem(s)...)
			case wr.spelling == "DEBUG":
				out = append(out, wr.emitted...)
				out = append(out, t.tokeniseRem(s)...)
			case wr.spelling == "DATA":
				out = append(out, wr.emitted...)
				out = append(out, t.tokeniseData(s)...)
			default:
				out = append(out, wr.emitted...)
				allowJumpnum = token.LinenumWords[wr.spelling]
				_, allowNumber = token.Lookup(wr.spelling)
				if wr.spelling == "SPC" || wr.spelling == "TAB" {
					spcOrTab = true
				}
			}
		default:
			s.read()
			switch {
			case c == ',' || c == '#' || c == ';':
				allowNumber = true
			case c == '(' || c == '[':
				allowJumpnum, allowNumber = false, true
			case c == ')' && spcOrTab:
				spcOrTab = false
				allowJumpnum, allowNumber = false, true
			default:
				allowJumpnum, allowNumber = false, false
			}
			if c >= 32 && c <= 127 {
				out = append(out, c)
			} else {
				out = append(out, ' ')
			}
		}
	}
}

// tokeniseLineNumber converts a leading line-number into the stored-
// line envelope (NUL + magic + 2-byte number) or, for a direct-mode
// line with no leading number, the ':' anchor byte (spec.md §3,
// tokeniser.py's _tokenise_line_number).
func (t *Tokeniser) tokeniseLineNumber(s *scanner) ([]byte, error) {
	num, ok := t.tokeniseUint(s)
	if !ok {
		return []byte{token.DirectLineMarker}, nil
	}
	out := []byte{token.StoredLineMarker, token.EnvelopeMagic[0], token.EnvelopeMagic[1], num[0], num[1]}
	if s.peek() == ' ' && !(num[0] == 0 && num[1] == 0) {
		s.read()
	}
	return out, nil
}

// tokeniseJumpNumber converts a line-number reference appearing after
// a keyword like GOTO into its T_UINT token, or passes a bare '.'
// through unchanged (tokeniser.py's _tokenise_jump_number).
func (t *Tokeniser) tokeniseJumpNumber(s *scanner) ([]byte, error) {
	num, ok := t.tokeniseUint(s)
	if ok {
		return append([]byte{token.TUint}, num[0], num[1]), nil
	}
	if s.peek() == '.' {
		s.read()
		return []byte{'.'}, nil
	}
	return nil, nil
}

// tokeniseUint reads up to 5 digits (tolerating interior whitespace,
// discarded) into a little-endian uint16, stopping early once the
// accumulated value exceeds 6552 — anything at or above 65530 is
// illegal in the dialect and GW-BASIC itself stops consuming digits at
// that point (tokeniser.py's _tokenise_uint).
func (t *Tokeniser) tokeniseUint(s *scanner) ([2]byte, bool) {
	var word []byte
	ndigits, nblanks := 0, 0
	for ndigits < 5 {
		c := s.peek()
		if c == 0 {
			break
		}
		if contains(digits, c) {
			word = append(word, s.read())
			nblanks = 0
			ndigits++
			if atoiBytes(word) > 6552 {
				break
			}
		} else if contains(whitespace, c) {
			s.read()
			nblanks++
		} else {
			break
		}
	}
	s.unread(nblanks)
	if len(word) == 0 {
		return [2]byte{}, false
	}
	n := atoiBytes(word)
	return [2]byte{byte(n), byte(n >> 8)}, true
}

func atoiBytes(b []byte) int {
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}
	return n
}

// tokeniseRem copies the remainder of the line verbatim, REM's body
// never being re-tokenised (tokeniser.py's _tokenise_rem).
func (t *Tokeniser) tokeniseRem(s *scanner) []byte {
	return []byte(s.readTo("\r\x00"))
}

// tokeniseData copies DATA's body verbatim except for embedded string
// literals, which are still scanned for their closing quote
// (tokeniser.py's _tokenise_data).
func (t *Tokeniser) tokeniseData(s *scanner) []byte {
	var out []byte
	for {
		out = append(out, []byte(s.readTo("\r\x00:\""))...)
		if s.peek() == '"' {
			out = append(out, t.tokeniseLiteral(s)...)
		} else {
			break
		}
	}
	return out
}

// tokeniseLiteral copies a double-quoted string literal verbatim,
// including its quotes (tokeniser.py's _tokenise_literal).
func (t *Tokeniser) tokeniseLiteral(s *scanner) []byte {
	var out []byte
	out = append(out, s.read())
	out = append(out, []byte(s.readTo("\r\x00\""))...)
	if s.peek() == '"' {
		out = append(out, s.read())
	}
	return out
}
