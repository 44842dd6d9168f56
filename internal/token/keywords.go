package token

import "strings"

// oneByteKeywords lists every keyword and reserved word assigned a single
// token byte, in assignment order starting at 0x81. Order only matters in
// that it must never change once a program has been tokenised with it —
// exactly the kind of on-disk-compatibility constraint spec.md §3
// describes for the byte layout as a whole.
var oneByteKeywords = []string{
	"END", "FOR", "NEXT", "DATA", "INPUT", "DIM", "READ", "LET",
	"GOTO", "RUN", "IF", "RESTORE", "GOSUB", "RETURN", "REM", "STOP",
	"PRINT", "CLEAR", "LIST", "NEW", "ON", "WAIT", "DEF", "POKE",
	"CONT", "OUT", "LPRINT", "LLIST", "WIDTH", "ELSE", "TRON", "TROFF",
	"SWAP", "ERASE", "EDIT", "ERROR", "RESUME", "DELETE", "AUTO",
	"RENUM", "DEFSTR", "DEFINT", "DEFSNG", "DEFDBL", "LINE", "WHILE",
	"WEND", "CALL", "WRITE", "OPTION", "RANDOMIZE", "OPEN", "CLOSE",
	"LOAD", "MERGE", "SAVE", "COLOR", "CLS", "MOTOR", "BSAVE", "BLOAD",
	"SOUND", "BEEP", "PSET", "PRESET", "SCREEN", "KEY", "LOCATE",
	"TO", "THEN", "TAB", "STEP", "USR", "FN", "SPC", "NOT", "ERL",
	"ERR", "STRING", "USING", "INSTR", "VARPTR", "CSRLIN", "POINT",
	"OFF", "INKEY", "SHARED", "CHAIN", "COMMON", "SHELL", "LOCK",
	"UNLOCK", "NAME", "KILL", "FILES", "DEBUG",
	"AND", "OR", "XOR", "EQV", "IMP", "MOD",
}

// twoByteKeywords are assigned a lead-byte prefix plus a second byte —
// the "extended set" spec.md §3 names. Real GW-BASIC reserves several
// such lead bytes for successive extension pages; two are modeled here,
// which is enough to exercise the codec without inventing dozens of
// rarely-used graphics/file statements.
var twoByteExtA = []string{
	"CIRCLE", "DRAW", "PAINT", "COM", "PLAY", "TIMER", "PEN", "IOCTL",
}
var twoByteExtB = []string{
	"FIELD", "GET", "PUT", "LSET", "RSET", "VIEW", "WINDOW", "PALETTE",
}

const (
	extALead = 0xFE
	extBLead = 0xFF
)

// Single-character operator spellings that the tokeniser emits as
// one-byte tokens (spec.md §4.F step 7). Assigned immediately after the
// one-byte keyword range.
var operatorChars = []string{"+", "-", "=", "/", "\\", "^", "*", "<", ">"}

var (
	keywordToToken = map[string][]byte{}
	tokenToKeyword = map[string]string{}

	// Named bytes referenced directly by the tokeniser and values façade.
	KWRem   byte
	KWElse  byte
	KWWhile byte
	KWData  byte
	KWSpc   byte
	KWTab   byte
	KWFn    byte
	KWUsr   byte
	KWGoto  byte
	KWGosub byte
	KWPrint byte
	KWDebug byte

	// OPlus is the token byte for the '+' operator, reused as the
	// dialect's WHILE-loop backward-jump marker (spec.md §4.F step 10).
	OPlus byte
	// OREM is appended after the REM token when REM was spelled as a
	// bare apostrophe, so a detokeniser can render it back as "'"
	// (spec.md §4.F step 8).
	OREM byte = 0x01
)

func register(spelling string, code []byte) {
	keywordToToken[spelling] = code
	tokenToKeyword[string(code)] = spelling
}

func init() {
	next := byte(0x81)
	for _, kw := range oneByteKeywords {
		register(kw, []byte{next})
		next++
	}
	for _, op := range operatorChars {
		register(op, []byte{next})
		next++
	}
	for i, kw := range twoByteExtA {
		register(kw, []byte{extALead, byte(0x80 + i)})
	}
	for i, kw := range twoByteExtB {
		register(kw, []byte{extBLead, byte(0x80 + i)})
	}

	KWRem = keywordToToken["REM"][0]
	KWElse = keywordToToken["ELSE"][0]
	KWWhile = keywordToToken["WHILE"][0]
	KWData = keywordToToken["DATA"][0]
	KWSpc = keywordToToken["SPC"][0]
	KWTab = keywordToToken["TAB"][0]
	KWFn = keywordToToken["FN"][0]
	KWUsr = keywordToToken["USR"][0]
	KWGoto = keywordToToken["GOTO"][0]
	KWGosub = keywordToToken["GOSUB"][0]
	KWPrint = keywordToToken["PRINT"][0]
	KWDebug = keywordToToken["DEBUG"][0]
	OPlus = keywordToToken["+"][0]
}

// LinenumWords is the jump-target keyword set: after one of these, a
// leading digit is a line-number reference, not a numeric literal
// (spec.md §4.F).
var LinenumWords = map[string]bool{
	"GOTO": true, "THEN": true, "ELSE": true, "GOSUB": true,
	"LIST": true, "RENUM": true, "EDIT": true, "LLIST": true,
	"DELETE": true, "RUN": true, "RESUME": true, "AUTO": true,
	"ERL": true, "RESTORE": true, "RETURN": true,
}

// ShortNameExceptions never continue-match into a longer identifier:
// FN, SPC, TAB and USR are always prefixes of a following '(' in
// practice, so the tokeniser must not keep extending them even though a
// name character might follow (spec.md §4.F keyword sub-scanner).
var ShortNameExceptions = map[string]bool{
	"FN": true, "SPC": true, "TAB": true, "USR": true,
}

// NameChars is the set of bytes permitted inside an identifier or
// keyword after its first letter: letters, digits, '.' (spec.md §4.A).
func NameChars(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '.':
		return true
	}
	return false
}

// notFoundError is returned by ToToken for a spelling with no token.
type notFoundError struct{ spelling string }

func (e *notFoundError) Error() string { return "no token for " + e.spelling }

// ToToken returns the token bytes for a canonical upper-case keyword
// spelling or single-character operator symbol.
func ToToken(spelling string) ([]byte, error) {
	spelling = strings.ToUpper(spelling)
	if code, ok := keywordToToken[spelling]; ok {
		return code, nil
	}
	return nil, &notFoundError{spelling}
}

// Lookup is the map-style counterpart of ToToken used by the tokeniser's
// inner loop (spec.md §4.F step 10's "word in self._keyword_to_token").
func Lookup(spelling string) ([]byte, bool) {
	code, ok := keywordToToken[spelling]
	return code, ok
}

// Spelling is the inverse of ToToken: given the bytes starting at a
// keyword/operator token (one or two bytes, lead byte already
// classified as a keyword by the caller), return its canonical spelling
// and how many bytes it consumed. Used by internal/detok.
func Spelling(data []byte) (spelling string, width int, ok bool) {
	if len(data) == 0 {
		return "", 0, false
	}
	lead := data[0]
	if lead == extALead || lead == extBLead {
		if len(data) < 2 {
			return "", 0, false
		}
		if kw, ok := tokenToKeyword[string(data[:2])]; ok {
			return kw, 2, true
		}
		return "", 0, false
	}
	if kw, ok := tokenToKeyword[string(data[:1])]; ok {
		return kw, 1, true
	}
	return "", 0, false
}

// IsKeywordLead reports whether b can begin a keyword/operator token
// (one-byte form or an extended two-byte lead).
func IsKeywordLead(b byte) bool {
	if b == extALead || b == extBLead {
		return true
	}
	_, ok := tokenToKeyword[string([]byte{b})]
	return ok
}
