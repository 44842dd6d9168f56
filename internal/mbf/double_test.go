package mbf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleRoundTrip(t *testing.T) {
	var testTable = []float64{0, 1, -1, 0.5, -0.5, 3.14159265358979, 1e100, -1e100, 1.0 / 3}

	for _, f := range testTable {
		v := NewDouble()
		_, err := v.FromValue(f)
		assert.NoError(t, err, "f=%v", f)
		assert.InDelta(t, f, v.ToValue(), 1e-8*(1+abs(f)), "f=%v", f)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestDoubleOverflowSaturates(t *testing.T) {
	v := NewDouble()
	_, err := v.FromValue(1e300)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, PosMaxDouble, v.Bytes())
}

func TestDoubleSingleConversion(t *testing.T) {
	d := NewDouble()
	d.FromValue(2.5)
	s := d.ToSingle()
	assert.Equal(t, 2.5, s.ToValue())

	back := s.ToDouble()
	assert.Equal(t, 2.5, back.ToValue())
}

func TestDoubleTokenRoundTrip(t *testing.T) {
	v := NewDouble()
	v.FromValue(1.25)
	tok := v.ToToken()
	assert.Equal(t, byte(0x1F), tok[0])

	back := NewDouble()
	_, err := back.FromToken(tok)
	assert.NoError(t, err)
	assert.Equal(t, 1.25, back.ToValue())
}
