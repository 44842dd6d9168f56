package values

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marioaugustorama/pcbasic/internal/floaterr"
	"github.com/marioaugustorama/pcbasic/internal/mbf"
)

func intVal(f *Facade, n int) Value {
	v := f.NewInteger()
	v.Integer().FromInt(n, false)
	return v
}

func sngVal(f *Facade, x float64) Value {
	v := f.NewSingle()
	v.Single().FromValue(x)
	return v
}

func TestAddPromotesIntegerToAvoidOverflow(t *testing.T) {
	f := newTestFacade()
	a := intVal(f, 32767)
	b := intVal(f, 1)
	sum, err := f.Add(a, b)
	assert.NoError(t, err)
	assert.Equal(t, KindSingle, sum.Kind)
	assert.Equal(t, 32768.0, sum.Single().ToValue())
}

func TestAddStringsConcatenate(t *testing.T) {
	f := newTestFacade()
	a := f.NewString()
	a.String().FromStr("foo")
	b := f.NewString()
	b.String().FromStr("bar")
	sum, err := f.Add(a, b)
	assert.NoError(t, err)
	assert.Equal(t, "foobar", sum.String().ToStr())
}

func TestSubUsesAddAndNeg(t *testing.T) {
	f := newTestFacade()
	a := sngVal(f, 5)
	b := sngVal(f, 3)
	d, err := f.Sub(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, d.Single().ToValue())
}

func TestMulPromotesToDoubleWhenEitherIsDouble(t *testing.T) {
	f := newTestFacade()
	a := sngVal(f, 2)
	b := f.NewDouble()
	b.Double().FromValue(3)
	p, err := f.Mul(a, b)
	assert.NoError(t, err)
	assert.Equal(t, KindDouble, p.Kind)
	assert.Equal(t, 6.0, p.Double().ToValue())
}

func TestDivByZeroIsSoftBySingleDefault(t *testing.T) {
	f := newTestFacade()
	a := sngVal(f, 1)
	zero := sngVal(f, 0)
	q, err := f.Div(a, zero)
	assert.NoError(t, err, "soft division by zero should not raise")
	assert.Equal(t, mbf.PosMaxSingle, q.Single().Bytes(), "soft division by zero should saturate to pos_max")
}

func TestDivByZeroHardWithDoRaise(t *testing.T) {
	f := newTestFacade()
	f.FloatErr.DoRaise = true
	a := sngVal(f, 1)
	zero := sngVal(f, 0)
	_, err := f.Div(a, zero)
	var be *floaterr.BasicError
	assert.True(t, errors.As(err, &be))
	assert.Equal(t, floaterr.ConditionDivisionByZero, be.Condition)
}

func TestIntDivTruncates(t *testing.T) {
	f := newTestFacade()
	a := intVal(f, 7)
	b := intVal(f, 2)
	q, err := f.IntDiv(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 3, q.Integer().ToInt(false))
}

func TestIntDivByZeroAlwaysHard(t *testing.T) {
	f := newTestFacade()
	a := intVal(f, 7)
	zero := intVal(f, 0)
	_, err := f.IntDiv(a, zero)
	var be *floaterr.BasicError
	assert.True(t, errors.As(err, &be))
	assert.True(t, be.Hard)
}

func TestCIntOverflowIsHardEvenWithoutDoRaise(t *testing.T) {
	f := newTestFacade()
	huge := sngVal(f, 1e9)
	_, err := f.CInt(huge)
	var be *floaterr.BasicError
	assert.True(t, errors.As(err, &be))
	assert.True(t, be.Hard)
	assert.Equal(t, floaterr.ConditionOverflow, be.Condition)
}

func TestModSignFollowsDividend(t *testing.T) {
	f := newTestFacade()
	a := intVal(f, -7)
	b := intVal(f, 3)
	m, err := f.Mod(a, b)
	assert.NoError(t, err)
	assert.Equal(t, -1, m.Integer().ToInt(false))
}

func TestPowIntegerExponentUsesSingleRepeatedSquaring(t *testing.T) {
	f := newTestFacade()
	base := sngVal(f, 2)
	exp := intVal(f, 10)
	p, err := f.Pow(base, exp)
	assert.NoError(t, err)
	assert.Equal(t, KindSingle, p.Kind)
	assert.InDelta(t, 1024.0, p.Single().ToValue(), 1e-2)
}

func TestPowDoubleMathPromotesToDouble(t *testing.T) {
	f := newTestFacade()
	f.DoubleMath = true
	base := f.NewDouble()
	base.Double().FromValue(2)
	exp := sngVal(f, 0.5)
	p, err := f.Pow(base, exp)
	assert.NoError(t, err)
	assert.Equal(t, KindDouble, p.Kind)
	assert.InDelta(t, 1.4142135, p.Double().ToValue(), 1e-5)
}
