// Package token holds the static token table: the byte-level encoding of
// BASIC keywords, operators and numeric literal leads, plus the line
// envelope markers. It carries no state and never changes after
// package init — the single immutable collaborator spec.md §5 requires.
package token

import "errors"

// ErrTruncated is returned by internal/detok when a token's declared
// width runs past the end of the line it is decoding.
var ErrTruncated = errors.New("token: truncated token")

// Line envelope markers (spec.md §3).
const (
	StoredLineMarker = 0x00 // '\0' begins a stored program line
	DirectLineMarker = ':'  // marks a direct (immediate-mode) line
)

// EnvelopeMagic is written immediately after StoredLineMarker on emission;
// a loader must treat these as an opaque nonzero sentinel, not a fixed
// value (spec.md §3, §9).
var EnvelopeMagic = [2]byte{0xC0, 0xDE}

// Numeric literal and jump-reference token lead bytes (spec.md §3).
const (
	TOct    = 0x0B // octal integer literal: 2 LE bytes follow
	THex    = 0x0C // hex integer literal: 2 LE bytes follow
	TUint   = 0x0E // unsigned 16-bit jump-number reference: 2 LE bytes follow
	TByte   = 0x0F // 1-byte unsigned integer literal (0..255): 1 byte follows
	TInt    = 0x1C // 2-byte signed integer literal follows
	TSingle = 0x1D // 4-byte MBF single literal follows
	TDouble = 0x1F // 8-byte MBF double literal follows
)

// smallIntBase is the first of eleven consecutive one-byte tokens that
// encode the integer constants 0..10 directly, with no trailing bytes.
// Classic dialect optimization: these are by far the most common
// literals in BASIC source (loop bounds, array indices).
const smallIntBase = 0x11

// SmallInt returns the one-byte token encoding the small integer n, and
// ok=false if n is outside the 0..10 range this token set covers.
func SmallInt(n int) (b byte, ok bool) {
	if n < 0 || n > 10 {
		return 0, false
	}
	return byte(smallIntBase + n), true
}

// SmallIntValue is the inverse of SmallInt.
func SmallIntValue(b byte) (n int, ok bool) {
	if b < smallIntBase || b > smallIntBase+10 {
		return 0, false
	}
	return int(b - smallIntBase), true
}

// Number is the set of token lead bytes denoting an Integer-valued
// literal token. T_SINGLE and T_DOUBLE are recognised separately by the
// values façade's from_token, per spec.md §4.E.
var Number = map[byte]bool{
	TOct:  true,
	THex:  true,
	TByte: true,
	TInt:  true,
}

func init() {
	for n := 0; n <= 10; n++ {
		b, _ := SmallInt(n)
		Number[b] = true
	}
}

// IsNumber reports whether lead is the lead byte of a numeric literal
// token (Integer, Single or Double).
func IsNumber(lead byte) bool {
	return Number[lead] || lead == TSingle || lead == TDouble
}
