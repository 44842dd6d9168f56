package values

import "github.com/marioaugustorama/pcbasic/internal/mbf"

// cint converts any numeric Value to Integer, optionally reading it
// back unsigned (spec.md §4.E's cint_ with unsigned). Called
// internally by OCT$/HEX$, which accept the -32768..65535 range.
func (f *Facade) cint(v Value, unsigned bool) (Value, error) {
	if v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	switch v.Kind {
	case KindInteger:
		return v, nil
	case KindSingle, KindDouble:
		var x float64
		var i *mbf.Integer
		var err error
		if v.Kind == KindSingle {
			x = v.Single().ToValue()
			i, err = v.Single().ToInteger()
		} else {
			x = v.Double().ToValue()
			i, err = v.Double().ToInteger()
		}
		if err != nil && unsigned && x > 0 && x < 65535.5 {
			// 32768..65535 share their two bytes with x-65536.
			i, err = mbf.NewInteger().FromValue(x - 65536)
		}
		return fromInteger(i), f.handleErr(KindInteger, err)
	}
	return Value{}, ErrTypeMismatch
}

// CInt is the CINT intrinsic: convert any number to Integer, rounding
// half-to-even, hard overflow outside -32768..32767.
func (f *Facade) CInt(v Value) (Value, error) { return f.cint(v, false) }

// CSng is CSNG: convert any number to Single.
func (f *Facade) CSng(v Value) (Value, error) {
	if v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	switch v.Kind {
	case KindSingle:
		return v, nil
	case KindInteger:
		s := mbf.NewSingle()
		_, err := s.FromValue(v.Integer().ToValue())
		return fromSingle(s), f.handleErr(KindSingle, err)
	case KindDouble:
		return fromSingle(v.Double().ToSingle()), nil
	}
	return Value{}, ErrTypeMismatch
}

// CDbl is CDBL: convert any number to Double.
func (f *Facade) CDbl(v Value) (Value, error) {
	if v.IsString() {
		return Value{}, ErrTypeMismatch
	}
	switch v.Kind {
	case KindDouble:
		return v, nil
	case KindInteger:
		d := mbf.NewDouble()
		_, err := d.FromValue(v.Integer().ToValue())
		return fromDouble(d), f.handleErr(KindDouble, err)
	case KindSingle:
		return fromDouble(v.Single().ToDouble()), nil
	}
	return Value{}, ErrTypeMismatch
}

// ToType converts value to the kind sigil names, the shared machinery
// behind DEFINT/DEFSNG/DEFDBL coercion and parameter passing (spec.md
// §4.E's to_type).
func (f *Facade) ToType(sigil byte, v Value) (Value, error) {
	kind, ok := KindForSigil(sigil)
	if !ok {
		return Value{}, ErrTypeMismatch
	}
	switch kind {
	case KindString:
		if !v.IsString() {
			return Value{}, ErrTypeMismatch
		}
		return v, nil
	case KindInteger:
		return f.CInt(v)
	case KindSingle:
		return f.CSng(v)
	case KindDouble:
		return f.CDbl(v)
	}
	return Value{}, ErrTypeMismatch
}

// toFloat promotes Integer to Single (to avoid overflow on e.g.
// -32768's absolute value) and leaves Single/Double unchanged — the
// dialect's to_float (spec.md §4.E, used by Abs/Neg/Add).
func (f *Facade) toFloat(v Value) (Value, error) {
	if v.Kind == KindInteger {
		return f.CSng(v)
	}
	return v, nil
}

// matchTypes promotes both operands to their common highest-precision
// numeric kind: Double > Single > Integer (spec.md §4.E's match_types).
// Strings only match with strings; mismatched kinds report
// ErrTypeMismatch.
func (f *Facade) matchTypes(l, r Value) (Value, Value, error) {
	if l.IsString() || r.IsString() {
		if l.IsString() && r.IsString() {
			return l, r, nil
		}
		return Value{}, Value{}, ErrTypeMismatch
	}
	highest := l.Kind
	if r.Kind > highest {
		highest = r.Kind
	}
	lc, err := f.promote(l, highest)
	if err != nil {
		return Value{}, Value{}, err
	}
	rc, err := f.promote(r, highest)
	if err != nil {
		return Value{}, Value{}, err
	}
	return lc, rc, nil
}

func (f *Facade) promote(v Value, kind Kind) (Value, error) {
	switch kind {
	case KindInteger:
		return f.CInt(v)
	case KindSingle:
		return f.CSng(v)
	case KindDouble:
		return f.CDbl(v)
	}
	return v, nil
}
