package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmallIntRoundTrip(t *testing.T) {
	for n := 0; n <= 10; n++ {
		b, ok := SmallInt(n)
		assert.True(t, ok, "n=%d", n)
		got, ok := SmallIntValue(b)
		assert.True(t, ok, "n=%d", n)
		assert.Equal(t, n, got, "n=%d", n)
	}
	_, ok := SmallInt(11)
	assert.False(t, ok)
	_, ok = SmallInt(-1)
	assert.False(t, ok)
}

func TestIsNumber(t *testing.T) {
	small, _ := SmallInt(3)
	var testTable = []struct {
		lead byte
		want bool
	}{
		{small, true},
		{TByte, true},
		{TOct, true},
		{THex, true},
		{TInt, true},
		{TSingle, true},
		{TDouble, true},
		{0x81, false},
	}
	for _, tt := range testTable {
		assert.Equal(t, tt.want, IsNumber(tt.lead), "lead=%#x", tt.lead)
	}
}
