package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsPromotesIntegerAndStaysPositive(t *testing.T) {
	f := newTestFacade()
	v := intVal(f, -32768)
	out, err := f.Abs(v)
	assert.NoError(t, err)
	assert.Equal(t, KindSingle, out.Kind)
	assert.Equal(t, 32768.0, out.Single().ToValue())
}

func TestAbsIsNoOpOnStrings(t *testing.T) {
	f := newTestFacade()
	s := f.NewString()
	s.String().FromStr("x")
	out, err := f.Abs(s)
	assert.NoError(t, err)
	assert.Equal(t, "x", out.String().ToStr())
}

func TestNegFlipsSign(t *testing.T) {
	f := newTestFacade()
	v := sngVal(f, 4)
	out, err := f.Neg(v)
	assert.NoError(t, err)
	assert.Equal(t, -4.0, out.Single().ToValue())
}

func TestSgn(t *testing.T) {
	f := newTestFacade()
	var testTable = []struct {
		n    int
		want int
	}{
		{-5, -1},
		{0, 0},
		{5, 1},
	}
	for _, tt := range testTable {
		v := intVal(f, tt.n)
		out, err := f.Sgn(v)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, out.Integer().ToInt(false), "n=%d", tt.n)
	}
}

func TestIntFloorsTowardNegativeInfinity(t *testing.T) {
	f := newTestFacade()
	v := sngVal(f, -1.5)
	out, err := f.Int(v)
	assert.NoError(t, err)
	assert.Equal(t, -2.0, out.Single().ToValue())
}

func TestFixTruncatesTowardZero(t *testing.T) {
	f := newTestFacade()
	v := sngVal(f, -1.5)
	out, err := f.Fix(v)
	assert.NoError(t, err)
	assert.Equal(t, -1.0, out.Single().ToValue())
}

func TestSqrDomainErrorIsHard(t *testing.T) {
	f := newTestFacade()
	v := sngVal(f, -4)
	_, err := f.Sqr(v)
	assert.Error(t, err)
}

func TestSqrOfPositive(t *testing.T) {
	f := newTestFacade()
	v := sngVal(f, 4)
	out, err := f.Sqr(v)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, out.Single().ToValue())
}

func TestExpSinCosRunAtSinglePrecisionByDefault(t *testing.T) {
	f := newTestFacade()
	v := sngVal(f, 0)
	out, err := f.Sin(v)
	assert.NoError(t, err)
	assert.Equal(t, KindSingle, out.Kind)
	assert.Equal(t, 0.0, out.Single().ToValue())
}
