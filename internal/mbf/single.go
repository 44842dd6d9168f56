package mbf

import (
	"math"

	"github.com/marioaugustorama/pcbasic/internal/token"
)

// Single is a 4-byte Microsoft Binary Format value (spec.md §3, sigil
// '!'): 1 sign bit, 8-bit biased exponent, 23-bit mantissa.
type Single struct {
	buf []byte
}

// PosMaxSingle is the largest finite magnitude a Single can hold
// (spec.md §3's pos_max, §4.B's required class constant).
var PosMaxSingle = mbfPosMax(4)

func NewSingle() *Single           { return &Single{buf: make([]byte, 4)} }
func ViewSingle(buf []byte) *Single { return &Single{buf: buf} }

func (v *Single) Bytes() []byte { return v.buf }

func (v *Single) Clone() *Single {
	b := make([]byte, 4)
	copy(b, v.buf)
	return &Single{b}
}

func (v *Single) ToBytes() []byte {
	b := make([]byte, 4)
	copy(b, v.buf)
	return b
}

func (v *Single) FromBytes(b []byte) *Single {
	copy(v.buf, b)
	return v
}

func (v *Single) ToValue() float64 { return mbfToFloat64(v.buf) }

func (v *Single) FromValue(f float64) (*Single, error) {
	b, err := mbfFromFloat64(4, f)
	copy(v.buf, b)
	return v, err
}

func (v *Single) FromToken(t []byte) (*Single, error) {
	if len(t) < 5 || t[0] != token.TSingle {
		return v, ErrDomain
	}
	copy(v.buf, t[1:5])
	return v, nil
}

func (v *Single) ToToken() []byte {
	out := make([]byte, 5)
	out[0] = token.TSingle
	copy(out[1:], v.buf)
	return out
}

func (v *Single) Sign() int     { return mbfSign(v.buf) }
func (v *Single) Eq(o *Single) bool { return v.ToValue() == o.ToValue() }
func (v *Single) Gt(o *Single) bool { return v.ToValue() > o.ToValue() }

func (v *Single) Iadd(o *Single) (*Single, error) { return v.FromValue(v.ToValue() + o.ToValue()) }
func (v *Single) Isub(o *Single) (*Single, error) { return v.FromValue(v.ToValue() - o.ToValue()) }
func (v *Single) Imul(o *Single) (*Single, error) { return v.FromValue(v.ToValue() * o.ToValue()) }

func (v *Single) Idiv(o *Single) (*Single, error) {
	d := o.ToValue()
	if d == 0 {
		v.FromBytes(PosMaxSingle)
		return v, ErrDivisionByZero
	}
	return v.FromValue(v.ToValue() / d)
}

func (v *Single) Iabs() (*Single, error) { return v.FromValue(math.Abs(v.ToValue())) }
func (v *Single) Ineg() (*Single, error) { return v.FromValue(-v.ToValue()) }
func (v *Single) Ifloor() (*Single, error) { return v.FromValue(math.Floor(v.ToValue())) }
func (v *Single) Itrunc() (*Single, error) { return v.FromValue(math.Trunc(v.ToValue())) }
func (v *Single) Iround() (*Single, error) { return v.FromValue(roundHalfToEven(v.ToValue())) }

// IpowInt raises v to an Integer exponent by repeated squaring, the
// dialect's non-double_math power path (spec.md §4.E pow()).
func (v *Single) IpowInt(exp *Integer) (*Single, error) {
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

func (v *Single) ToInteger() (*Integer, error) {
	i := NewInteger()
	_, err := i.FromValue(v.ToValue())
	return i, err
}

func (v *Single) ToDouble() *Double {
	d := NewDouble()
	d.FromValue(v.ToValue())
	return d
}
