// Package values is the dialect's typed-value façade (spec.md §4.E):
// the single place that knows how to create, convert between, and
// operate on the four scalar kinds (Integer, Single, Double, String).
// Every caller outside this package and internal/mbf/internal/strheap
// works only through Value and Facade, never the concrete kernels
// directly — the tagged-variant idiom standing in for the original's
// class hierarchy (spec.md §9's design note).
package values

import (
	"errors"

	"github.com/marioaugustorama/pcbasic/internal/mbf"
	"github.com/marioaugustorama/pcbasic/internal/strheap"
)

// Kind distinguishes the four scalar types a Value can hold.
type Kind int

const (
	KindInteger Kind = iota
	KindSingle
	KindDouble
	KindString
)

// Sigil returns the type-declaration character the dialect prints
// after a variable or literal of this kind (spec.md §3).
func (k Kind) Sigil() byte {
	switch k {
	case KindInteger:
		return '%'
	case KindSingle:
		return '!'
	case KindDouble:
		return '#'
	case KindString:
		return '$'
	}
	return 0
}

// KindForSigil is the inverse of Sigil; ok is false for an unknown
// character.
func KindForSigil(sigil byte) (Kind, bool) {
	switch sigil {
	case '%':
		return KindInteger, true
	case '!':
		return KindSingle, true
	case '#':
		return KindDouble, true
	case '$':
		return KindString, true
	}
	return 0, false
}

// ErrTypeMismatch is the dialect's "Type mismatch" condition: a string
// where a number was required, or vice versa (spec.md §4.D).
var ErrTypeMismatch = errors.New("type mismatch")

// Value is a tagged union over the four scalar kernels. Exactly one of
// the kernel fields is valid at a time, selected by Kind.
type Value struct {
	Kind Kind

	i   *mbf.Integer
	sg  *mbf.Single
	dbl *mbf.Double
	str *strheap.String
}

func fromInteger(v *mbf.Integer) Value { return Value{Kind: KindInteger, i: v} }
func fromSingle(v *mbf.Single) Value   { return Value{Kind: KindSingle, sg: v} }
func fromDouble(v *mbf.Double) Value   { return Value{Kind: KindDouble, dbl: v} }
func fromStr(v *strheap.String) Value  { return Value{Kind: KindString, str: v} }

// Integer, Single, Double, String are the narrowing accessors; calling
// the wrong one for the Value's Kind returns nil, and using that nil
// kernel panics, the same programmer-error contract as a failed Python
// isinstance assumption would have been.
func (v Value) Integer() *mbf.Integer  { return v.i }
func (v Value) Single() *mbf.Single    { return v.sg }
func (v Value) Double() *mbf.Double    { return v.dbl }
func (v Value) String() *strheap.String { return v.str }

// IsString reports whether v holds a String, the dialect's one
// non-numeric kind (spec.md §3).
func (v Value) IsString() bool { return v.Kind == KindString }

// Clone makes an independent copy sharing the same heap (for String).
func (v Value) Clone() Value {
	switch v.Kind {
	case KindInteger:
		return fromInteger(v.i.Clone())
	case KindSingle:
		return fromSingle(v.sg.Clone())
	case KindDouble:
		return fromDouble(v.dbl.Clone())
	case KindString:
		return fromStr(v.str.Clone())
	}
	return Value{}
}

// ToToken encodes a numeric Value as the tokeniser's literal token
// bytes (spec.md §4.F's decimal literal sub-scanner ends by calling
// this; hex/oct literals go through Facade.FromHexLiteral and
// FromOctLiteral instead). Panics if called on a String, which never
// has a literal token form.
func (v Value) ToToken() []byte {
	switch v.Kind {
	case KindInteger:
		return v.i.ToToken()
	case KindSingle:
		return v.sg.ToToken()
	case KindDouble:
		return v.dbl.ToToken()
	}
	panic("values: ToToken called on a String")
}

// ToBytes returns the value's owned on-disk/array representation
// (spec.md §3's storage sizes: 2/4/8/3 bytes).
func (v Value) ToBytes() []byte {
	switch v.Kind {
	case KindInteger:
		return v.i.ToBytes()
	case KindSingle:
		return v.sg.ToBytes()
	case KindDouble:
		return v.dbl.ToBytes()
	case KindString:
		return v.str.ToBytes()
	}
	return nil
}
