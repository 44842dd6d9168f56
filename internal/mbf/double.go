package mbf

import (
	"math"

	"github.com/marioaugustorama/pcbasic/internal/token"
)

// Double is an 8-byte Microsoft Binary Format value (spec.md §3, sigil
// '#'): 1 sign bit, 8-bit biased exponent, 55-bit mantissa.
type Double struct {
	buf []byte
}

// PosMaxDouble is the largest finite magnitude a Double can hold.
var PosMaxDouble = mbfPosMax(8)

func NewDouble() *Double            { return &Double{buf: make([]byte, 8)} }
func ViewDouble(buf []byte) *Double { return &Double{buf: buf} }

func (v *Double) Bytes() []byte { return v.buf }

func (v *Double) Clone() *Double {
	b := make([]byte, 8)
	copy(b, v.buf)
	return &Double{b}
}

func (v *Double) ToBytes() []byte {
	b := make([]byte, 8)
	copy(b, v.buf)
	return b
}

func (v *Double) FromBytes(b []byte) *Double {
	copy(v.buf, b)
	return v
}

func (v *Double) ToValue() float64 { return mbfToFloat64(v.buf) }

func (v *Double) FromValue(f float64) (*Double, error) {
	b, err := mbfFromFloat64(8, f)
	copy(v.buf, b)
	return v, err
}

func (v *Double) FromToken(t []byte) (*Double, error) {
	if len(t) < 9 || t[0] != token.TDouble {
		return v, ErrDomain
	}
	copy(v.buf, t[1:9])
	return v, nil
}

func (v *Double) ToToken() []byte {
	out := make([]byte, 9)
	out[0] = token.TDouble
	copy(out[1:], v.buf)
	return out
}

func (v *Double) Sign() int        { return mbfSign(v.buf) }
func (v *Double) Eq(o *Double) bool { return v.ToValue() == o.ToValue() }
func (v *Double) Gt(o *Double) bool { return v.ToValue() > o.ToValue() }

func (v *Double) Iadd(o *Double) (*Double, error) { return v.FromValue(v.ToValue() + o.ToValue()) }
func (v *Double) Isub(o *Double) (*Double, error) { return v.FromValue(v.ToValue() - o.ToValue()) }
func (v *Double) Imul(o *Double) (*Double, error) { return v.FromValue(v.ToValue() * o.ToValue()) }

func (v *Double) Idiv(o *Double) (*Double, error) {
	d := o.ToValue()
	if d == 0 {
		v.FromBytes(PosMaxDouble)
		return v, ErrDivisionByZero
	}
	return v.FromValue(v.ToValue() / d)
}

func (v *Double) Iabs() (*Double, error)   { return v.FromValue(math.Abs(v.ToValue())) }
func (v *Double) Ineg() (*Double, error)   { return v.FromValue(-v.ToValue()) }
func (v *Double) Ifloor() (*Double, error) { return v.FromValue(math.Floor(v.ToValue())) }
func (v *Double) Itrunc() (*Double, error) { return v.FromValue(math.Trunc(v.ToValue())) }
func (v *Double) Iround() (*Double, error) { return v.FromValue(roundHalfToEven(v.ToValue())) }

// IpowInt mirrors Single.IpowInt for the double_math power path (spec.md
// §4.E pow(), §6 --double-math flag).
func (v *Double) IpowInt(exp *Integer) (*Double, error) {
	n := exp.ToInt(false)
	base := v.ToValue()
	neg := n < 0
	if neg {
		n = -n
	}
	result := 1.0
	cur := base
	for n > 0 {
		if n&1 == 1 {
			result *= cur
		}
		cur *= cur
		n >>= 1
	}
	if neg {
		if result == 0 {
			return v, ErrDivisionByZero
		}
		result = 1 / result
	}
	return v.FromValue(result)
}

func (v *Double) ToInteger() (*Integer, error) {
	i := NewInteger()
	_, err := i.FromValue(v.ToValue())
	return i, err
}

func (v *Double) ToSingle() *Single {
	s := NewSingle()
	s.FromValue(v.ToValue())
	return s
}
