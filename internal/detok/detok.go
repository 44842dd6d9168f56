// Package detok implements the inverse of internal/tokenizer: it walks
// tokenised line bytes and renders the ASCII BASIC source LIST/LLIST
// show the user. Not part of the original distillation (which only
// specified the forward direction), but every front end that can store
// a program also needs to list it back out, so this package exists as
// a deliberate addition. Grounded on gmofishsauce-wut4's asm/disasm.go:
// a dispatch-by-leading-bits walk over a binary stream that produces
// mnemonic text, the same structural idiom applied to BASIC token
// bytes instead of WUT-4 machine words.
package detok

import (
	"strconv"

	"github.com/marioaugustorama/pcbasic/internal/token"
	"github.com/marioaugustorama/pcbasic/internal/values"
)

// Detokenise renders one tokenised line (as produced by
// tokenizer.Tokeniser.TokeniseLine, envelope included) back to its
// ASCII spelling. vals supplies the numeric rendering rules (LIST's
// convention: no leading sign space, but the type sigil is shown).
func Detokenise(line []byte, vals *values.Facade) (string, error) {
	pos := 0
	var out []byte

	if len(line) > 0 && line[0] == token.StoredLineMarker {
		if len(line) < 5 {
			return "", token.ErrTruncated
		}
		num := int(line[3]) | int(line[4])<<8
		out = append(out, []byte(strconv.Itoa(num))...)
		out = append(out, ' ')
		pos = 5
	} else if len(line) > 0 && line[0] == token.DirectLineMarker {
		pos = 1
	}

	for pos < len(line) {
		b := line[pos]
		switch {
		case b == 0:
			pos = len(line)

		case b == '"':
			end := pos + 1
			for end < len(line) && line[end] != '"' && line[end] != 0 && line[end] != '\r' {
				end++
			}
			if end < len(line) && line[end] == '"' {
				end++
			}
			out = append(out, line[pos:end]...)
			pos = end

		case b == token.TUint:
			if pos+2 >= len(line) {
				return "", token.ErrTruncated
			}
			n := int(line[pos+1]) | int(line[pos+2])<<8
			out = append(out, []byte(strconv.Itoa(n))...)
			pos += 3

		case token.IsNumber(b):
			width := tokenWidth(b)
			if pos+width > len(line) {
				return "", token.ErrTruncated
			}
			v, err := vals.FromToken(line[pos : pos+width])
			if err != nil {
				return "", err
			}
			s, err := vals.ToStr(v, false, true)
			if err != nil {
				return "", err
			}
			out = append(out, []byte(s)...)
			pos += width

		case token.IsKeywordLead(b):
			spelling, width, ok := token.Spelling(line[pos:])
			if !ok {
				return "", token.ErrTruncated
			}
			pos += width
			switch spelling {
			case "REM":
				if pos < len(line) && line[pos] == token.OREM {
					out = append(out, '\'')
					pos++
				} else {
					out = append(out, []byte(spelling)...)
				}
			case "WHILE":
				out = append(out, []byte(spelling)...)
				if pos < len(line) && line[pos] == token.OPlus {
					pos++
				}
			default:
				out = append(out, []byte(spelling)...)
			}

		default:
			out = append(out, b)
			pos++
		}
	}
	return string(out), nil
}

// tokenWidth returns the total byte width (lead byte included) of the
// numeric literal token starting with lead.
func tokenWidth(lead byte) int {
	if _, ok := token.SmallIntValue(lead); ok {
		return 1
	}
	switch lead {
	case token.TByte:
		return 2
	case token.TOct, token.THex, token.TInt:
		return 3
	case token.TSingle:
		return 5
	case token.TDouble:
		return 9
	}
	return 1
}
