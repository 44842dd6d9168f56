package values

// Bitwise operators all work over the operands' unsigned 16-bit
// Integer view, the original's to_integer(unsigned=True) convention
// (spec.md §4.E): the host's ^int is 64-bit, so every result is
// masked back into 16 bits before storing.
func (f *Facade) bitwiseOperand(v Value) (int, error) {
	i, err := f.CInt(v)
	if err != nil {
		return 0, err
	}
	return i.Integer().ToInt(true), nil
}

func (f *Facade) fromUnsigned16(n int) Value {
	v := f.NewInteger()
	v.Integer().FromInt(n&0xFFFF, true)
	return v
}

// Not is NOT: bitwise complement, -x-1 over the signed Integer value.
func (f *Facade) Not(v Value) (Value, error) {
	i, err := f.CInt(v)
	if err != nil {
		return Value{}, err
	}
	out := f.NewInteger()
	_, err = out.Integer().FromInt(^i.Integer().ToInt(false), false)
	return out, err
}

// And is AND.
func (f *Facade) And(l, r Value) (Value, error) {
	a, err := f.bitwiseOperand(l)
	if err != nil {
		return Value{}, err
	}
	b, err := f.bitwiseOperand(r)
	if err != nil {
		return Value{}, err
	}
	return f.fromUnsigned16(a & b), nil
}

// Or is OR (inclusive).
func (f *Facade) Or(l, r Value) (Value, error) {
	a, err := f.bitwiseOperand(l)
	if err != nil {
		return Value{}, err
	}
	b, err := f.bitwiseOperand(r)
	if err != nil {
		return Value{}, err
	}
	return f.fromUnsigned16(a | b), nil
}

// Xor is XOR.
func (f *Facade) Xor(l, r Value) (Value, error) {
	a, err := f.bitwiseOperand(l)
	if err != nil {
		return Value{}, err
	}
	b, err := f.bitwiseOperand(r)
	if err != nil {
		return Value{}, err
	}
	return f.fromUnsigned16(a ^ b), nil
}

// Eqv is EQV: bitwise equivalence (NOT XOR).
func (f *Facade) Eqv(l, r Value) (Value, error) {
	a, err := f.bitwiseOperand(l)
	if err != nil {
		return Value{}, err
	}
	b, err := f.bitwiseOperand(r)
	if err != nil {
		return Value{}, err
	}
	return f.fromUnsigned16(^(a ^ b)), nil
}

// Imp is IMP: bitwise implication, (NOT left) OR right.
func (f *Facade) Imp(l, r Value) (Value, error) {
	a, err := f.bitwiseOperand(l)
	if err != nil {
		return Value{}, err
	}
	b, err := f.bitwiseOperand(r)
	if err != nil {
		return Value{}, err
	}
	return f.fromUnsigned16((^a) | b), nil
}
