package values

import (
	"math"

	"github.com/marioaugustorama/pcbasic/internal/mbf"
)

// Add is '+': numeric addition (after promoting Integer to Single to
// avoid overflow, spec.md §4.E) or string concatenation.
func (f *Facade) Add(l, r Value) (Value, error) {
	if l.IsString() || r.IsString() {
		lc, rc, err := f.matchTypes(l, r)
		if err != nil {
			return Value{}, err
		}
		out, err := lc.String().Clone().Concat(rc.String())
		return fromStr(out), err
	}
	lf, err := f.toFloat(l)
	if err != nil {
		return Value{}, err
	}
	lc, rc, err := f.matchTypes(lf, r)
	if err != nil {
		return Value{}, err
	}
	return f.iadd(lc, rc)
}

func (f *Facade) iadd(l, r Value) (Value, error) {
	switch l.Kind {
	case KindInteger:
		out := l.Integer().Clone()
		_, err := out.Iadd(r.Integer())
		return fromInteger(out), f.handleErr(l.Kind, err)
	case KindSingle:
		out := l.Single().Clone()
		_, err := out.Iadd(r.Single())
		return fromSingle(out), f.handleErr(l.Kind, err)
	case KindDouble:
		out := l.Double().Clone()
		_, err := out.Iadd(r.Double())
		return fromDouble(out), f.handleErr(l.Kind, err)
	}
	return Value{}, ErrTypeMismatch
}

// Sub is '-': subtraction, built on Add and Neg the way spec.md §4.E
// defines it (sub(l, r) == add(l, neg(r))).
func (f *Facade) Sub(l, r Value) (Value, error) {
	neg, err := f.Neg(r)
	if err != nil {
		return Value{}, err
	}
	return f.Add(l, neg)
}

// Mul is '*': multiplication at the wider of the two operands'
// precision, Integer promoted straight to Single (spec.md §4.E's mul).
func (f *Facade) Mul(l, r Value) (Value, error) {
	if l.IsString() || r.IsString() {
		return Value{}, ErrTypeMismatch
	}
	if l.Kind == KindDouble || r.Kind == KindDouble {
		lc, err := f.CDbl(l)
		if err != nil {
			return Value{}, err
		}
		rc, err := f.CDbl(r)
		if err != nil {
			return Value{}, err
		}
		out := lc.Double().Clone()
		_, err = out.Imul(rc.Double())
		return fromDouble(out), f.handleErr(KindDouble, err)
	}
	lc, err := f.CSng(l)
	if err != nil {
		return Value{}, err
	}
	rc, err := f.CSng(r)
	if err != nil {
		return Value{}, err
	}
	out := lc.Single().Clone()
	_, err = out.Imul(rc.Single())
	return fromSingle(out), f.handleErr(KindSingle, err)
}

// Div is '/': floating division, same precision-selection rule as Mul.
func (f *Facade) Div(l, r Value) (Value, error) {
	if l.IsString() || r.IsString() {
		return Value{}, ErrTypeMismatch
	}
	if l.Kind == KindDouble || r.Kind == KindDouble {
		lc, err := f.CDbl(l)
		if err != nil {
			return Value{}, err
		}
		rc, err := f.CDbl(r)
		if err != nil {
			return Value{}, err
		}
		out := lc.Double().Clone()
		_, err = out.Idiv(rc.Double())
		return fromDouble(out), f.handleErr(KindDouble, err)
	}
	lc, err := f.CSng(l)
	if err != nil {
		return Value{}, err
	}
	rc, err := f.CSng(r)
	if err != nil {
		return Value{}, err
	}
	out := lc.Single().Clone()
	_, err = out.Idiv(rc.Single())
	return fromSingle(out), f.handleErr(KindSingle, err)
}

// IntDiv is '\': truncating integer division, always hard on overflow
// or division by zero (spec.md §4.E's intdiv).
func (f *Facade) IntDiv(l, r Value) (Value, error) {
	lc, err := f.CInt(l)
	if err != nil {
		return Value{}, err
	}
	rc, err := f.CInt(r)
	if err != nil {
		return Value{}, err
	}
	out := lc.Integer().Clone()
	_, err = out.IdivInt(rc.Integer())
	return fromInteger(out), f.handleErr(KindInteger, err)
}

// Mod is MOD: remainder with the dividend's sign (spec.md §4.E's mod_).
func (f *Facade) Mod(l, r Value) (Value, error) {
	lc, err := f.CInt(l)
	if err != nil {
		return Value{}, err
	}
	rc, err := f.CInt(r)
	if err != nil {
		return Value{}, err
	}
	out := lc.Integer().Clone()
	_, err = out.Imod(rc.Integer())
	return fromInteger(out), f.handleErr(KindInteger, err)
}

// Pow is '^': exponentiation. When DoubleMath is set and either
// operand is already Double, it uses float exponentiation at Double
// precision. Otherwise an Integer exponent goes through repeated
// squaring over Single (the cheaper, historically faithful path), and
// any other exponent through float exponentiation at Single precision
// (spec.md §4.E's pow, §6 --double-math).
func (f *Facade) Pow(l, r Value) (Value, error) {
	if l.IsString() || r.IsString() {
		return Value{}, ErrTypeMismatch
	}
	if f.DoubleMath && (l.Kind == KindDouble || r.Kind == KindDouble) {
		return f.powFloat(l, r, true)
	}
	if r.Kind == KindInteger {
		ls, err := f.CSng(l)
		if err != nil {
			return Value{}, err
		}
		out := ls.Single().Clone()
		_, err = out.IpowInt(r.Integer())
		return fromSingle(out), f.handleErr(KindSingle, err)
	}
	return f.powFloat(l, r, false)
}

func (f *Facade) powFloat(l, r Value, useDouble bool) (Value, error) {
	if useDouble {
		ld, err := f.CDbl(l)
		if err != nil {
			return Value{}, err
		}
		rd, err := f.CDbl(r)
		if err != nil {
			return Value{}, err
		}
		out := mbf.NewDouble()
		_, err = out.FromValue(math.Pow(ld.Double().ToValue(), rd.Double().ToValue()))
		return fromDouble(out), f.handleErr(KindDouble, err)
	}
	ls, err := f.CSng(l)
	if err != nil {
		return Value{}, err
	}
	rs, err := f.CSng(r)
	if err != nil {
		return Value{}, err
	}
	out := mbf.NewSingle()
	_, err = out.FromValue(math.Pow(ls.Single().ToValue(), rs.Single().ToValue()))
	return fromSingle(out), f.handleErr(KindSingle, err)
}
