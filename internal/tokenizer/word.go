package tokenizer

import "github.com/marioaugustorama/pcbasic/internal/token"

// wordResult reports what tokeniseWord consumed and emitted, so the
// caller can branch on the canonical spelling (REM/DATA/DEBUG/SPC/TAB)
// the way tokeniser.py's tokenise_line does with _tokenise_word's
// return value.
type wordResult struct {
	spelling string
	emitted  []byte
}

// tokeniseWord reads an identifier or keyword spelling and resolves it
// to a token, handling the "GO TO" / "GOSUB" run-together quirk and the
// ELSE/WHILE rewrite rules (tokeniser.py's _tokenise_word).
func (t *Tokeniser) tokeniseWord(s *scanner) wordResult {
	word := make([]byte, 0, 8)
	for {
		c := s.read()
		if c == 0 {
			return wordResult{spelling: string(word), emitted: word}
		}
		word = append(word, upperByte(c))
		spelling := string(word)

		if spelling == "GO" {
			pos := s.pos
			if s.peekUpper(4) == " SUB" {
				word = []byte("GOSUB")
				s.read()
				s.read()
				s.read()
				s.read()
			} else {
				s.skip(whitespace)
				two := s.peekUpper(2)
				if two == "TO" {
					word = []byte("GOTO")
					s.read()
					s.read()
				} else {
					s.pos = pos
				}
			}
			spelling = string(word)
			if spelling == "GOTO" || spelling == "GOSUB" {
				nxt := s.peek()
				if nxt != 0 && token.NameChars(nxt) {
					s.pos = pos
					word = []byte("GO")
					spelling = "GO"
				}
			}
		}

		if tok, ok := token.Lookup(spelling); ok {
			if !token.ShortNameExceptions[spelling] {
				nxt := s.peek()
				if nxt != 0 && token.NameChars(nxt) {
					continue
				}
			}
			var out []byte
			switch spelling {
			case "ELSE":
				out = append([]byte{token.DirectLineMarker}, tok...)
			case "WHILE":
				out = append(append([]byte{}, tok...), token.OPlus)
			default:
				out = tok
			}
			return wordResult{spelling: spelling, emitted: out}
		}
		if !token.NameChars(c) {
			word = word[:len(word)-1]
			s.unread(1)
			return wordResult{spelling: spelling[:len(spelling)-1], emitted: word}
		}
	}
}
