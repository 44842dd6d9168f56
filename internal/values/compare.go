package values

// boolEq and boolGt implement the underlying comparisons spec.md §4.E's
// eq/neq/gt/gte/lte/lt are all built from: promote both operands to a
// common kind first via matchTypes, then compare.
func (f *Facade) boolEq(l, r Value) (bool, error) {
	lc, rc, err := f.matchTypes(l, r)
	if err != nil {
		return false, err
	}
	switch lc.Kind {
	case KindInteger:
		return lc.Integer().Eq(rc.Integer()), nil
	case KindSingle:
		return lc.Single().Eq(rc.Single()), nil
	case KindDouble:
		return lc.Double().Eq(rc.Double()), nil
	case KindString:
		return lc.String().Eq(rc.String()), nil
	}
	return false, ErrTypeMismatch
}

func (f *Facade) boolGt(l, r Value) (bool, error) {
	lc, rc, err := f.matchTypes(l, r)
	if err != nil {
		return false, err
	}
	switch lc.Kind {
	case KindInteger:
		return lc.Integer().Gt(rc.Integer()), nil
	case KindSingle:
		return lc.Single().Gt(rc.Single()), nil
	case KindDouble:
		return lc.Double().Gt(rc.Double()), nil
	case KindString:
		return lc.String().Gt(rc.String()), nil
	}
	return false, ErrTypeMismatch
}

// Eq, Neq, Gt, Gte, Lte, Lt all return the dialect's Integer truth
// value, -1 or 0, matching spec.md §4.E.
func (f *Facade) Eq(l, r Value) (Value, error) {
	b, err := f.boolEq(l, r)
	if err != nil {
		return Value{}, err
	}
	return f.FromBool(b), nil
}

func (f *Facade) Neq(l, r Value) (Value, error) {
	b, err := f.boolEq(l, r)
	if err != nil {
		return Value{}, err
	}
	return f.FromBool(!b), nil
}

func (f *Facade) Gt(l, r Value) (Value, error) {
	b, err := f.boolGt(l, r)
	if err != nil {
		return Value{}, err
	}
	return f.FromBool(b), nil
}

func (f *Facade) Gte(l, r Value) (Value, error) {
	b, err := f.boolGt(r, l)
	if err != nil {
		return Value{}, err
	}
	return f.FromBool(!b), nil
}

func (f *Facade) Lte(l, r Value) (Value, error) {
	b, err := f.boolGt(l, r)
	if err != nil {
		return Value{}, err
	}
	return f.FromBool(!b), nil
}

func (f *Facade) Lt(l, r Value) (Value, error) {
	b, err := f.boolGt(r, l)
	if err != nil {
		return Value{}, err
	}
	return f.FromBool(b), nil
}
