package values

import (
	"math"

	"github.com/marioaugustorama/pcbasic/internal/mbf"
)

// Abs is ABS: absolute value, a no-op on strings, Integer promoted to
// Single first to avoid overflow on math.MinInt16 (spec.md §4.E).
func (f *Facade) Abs(v Value) (Value, error) {
	if v.IsString() {
		return v, nil
	}
	fv, err := f.toFloat(v)
	if err != nil {
		return Value{}, err
	}
	return f.iabs(fv)
}

func (f *Facade) iabs(v Value) (Value, error) {
	switch v.Kind {
	case KindSingle:
		out := v.Single().Clone()
		_, err := out.Iabs()
		return fromSingle(out), f.handleErr(v.Kind, err)
	case KindDouble:
		out := v.Double().Clone()
		_, err := out.Iabs()
		return fromDouble(out), f.handleErr(v.Kind, err)
	}
	return v, nil
}

// Neg is unary '-': negation, a no-op on strings, Integer promoted the
// same way Abs is.
func (f *Facade) Neg(v Value) (Value, error) {
	if v.IsString() {
		return v, nil
	}
	fv, err := f.toFloat(v)
	if err != nil {
		return Value{}, err
	}
	switch fv.Kind {
	case KindSingle:
		out := fv.Single().Clone()
		_, err := out.Ineg()
		return fromSingle(out), f.handleErr(fv.Kind, err)
	case KindDouble:
		out := fv.Double().Clone()
		_, err := out.Ineg()
		return fromDouble(out), f.handleErr(fv.Kind, err)
	}
	return fv, nil
}

// Sgn is SGN: -1, 0 or 1, as an Integer.
func (f *Facade) Sgn(v Value) (Value, error) {
	if v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	var sign int
	switch v.Kind {
	case KindInteger:
		sign = v.Integer().Sign()
	case KindSingle:
		sign = v.Single().Sign()
	case KindDouble:
		sign = v.Double().Sign()
	}
	out := f.NewInteger()
	out.Integer().FromInt(sign, false)
	return out, nil
}

// Int is INT: floor toward negative infinity, preserving the operand's
// kind (spec.md §4.E's int_).
func (f *Facade) Int(v Value) (Value, error) {
	if v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	switch v.Kind {
	case KindInteger:
		return v, nil
	case KindSingle:
		out := v.Single().Clone()
		out.Ifloor()
		return fromSingle(out), nil
	case KindDouble:
		out := v.Double().Clone()
		out.Ifloor()
		return fromDouble(out), nil
	}
	return Value{}, ErrTypeMismatch
}

// Fix is FIX: truncate toward zero, preserving kind.
func (f *Facade) Fix(v Value) (Value, error) {
	if v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	switch v.Kind {
	case KindInteger:
		return v, nil
	case KindSingle:
		out := v.Single().Clone()
		out.Itrunc()
		return fromSingle(out), nil
	case KindDouble:
		out := v.Double().Clone()
		out.Itrunc()
		return fromDouble(out), nil
	}
	return Value{}, ErrTypeMismatch
}

// Round implements spec.md §4.E's round(): round a Single or Double to
// the nearest whole number, keeping its kind, for use wherever the
// original applies Python's round() to a Float before an Integer
// conversion. An Integer operand is promoted and returned as a Single.
func (f *Facade) Round(v Value) (Value, error) {
	fv, err := f.toFloat(v)
	if err != nil {
		return Value{}, err
	}
	switch fv.Kind {
	case KindSingle:
		out := fv.Single().Clone()
		out.Iround()
		return fromSingle(out), nil
	case KindDouble:
		out := fv.Double().Clone()
		out.Iround()
		return fromDouble(out), nil
	}
	return fv, nil
}

// floatFunction is the shared machinery behind SQR/EXP/SIN/COS/TAN/
// ATN/LOG: convert to IEEE-754 float64 (at Double precision when
// DoubleMath is set and the operand is Double, Single otherwise),
// apply fn, convert back,
// routing any math-domain or overflow error through the float error
// handler (spec.md §4.E's _call_float_function).
func (f *Facade) floatFunction(v Value, fn func(float64) float64) (Value, error) {
	if v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	if f.DoubleMath && v.Kind == KindDouble {
		d, err := f.CDbl(v)
		if err != nil {
			return Value{}, err
		}
		out := mbf.NewDouble()
		_, err = out.FromValue(fn(d.Double().ToValue()))
		return fromDouble(out), f.handleErr(KindDouble, err)
	}
	s, err := f.CSng(v)
	if err != nil {
		return Value{}, err
	}
	out := mbf.NewSingle()
	_, err = out.FromValue(fn(s.Single().ToValue()))
	return fromSingle(out), f.handleErr(KindSingle, err)
}

func (f *Facade) Sqr(v Value) (Value, error) {
	return f.floatFunction(v, func(x float64) float64 {
		if x < 0 {
			return math.NaN()
		}
		return math.Sqrt(x)
	})
}

func (f *Facade) Exp(v Value) (Value, error) { return f.floatFunction(v, math.Exp) }
func (f *Facade) Sin(v Value) (Value, error) { return f.floatFunction(v, math.Sin) }
func (f *Facade) Cos(v Value) (Value, error) { return f.floatFunction(v, math.Cos) }
func (f *Facade) Tan(v Value) (Value, error) { return f.floatFunction(v, math.Tan) }
func (f *Facade) Atn(v Value) (Value, error) { return f.floatFunction(v, math.Atan) }

func (f *Facade) Log(v Value) (Value, error) {
	return f.floatFunction(v, func(x float64) float64 {
		if x <= 0 {
			return math.NaN()
		}
		return math.Log(x)
	})
}
