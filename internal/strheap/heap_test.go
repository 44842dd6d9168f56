package strheap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAllocRead(t *testing.T) {
	h := NewHeap()
	ptr, err := h.Alloc([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(h.Read(ptr, 5)))

	ptr2, err := h.Alloc([]byte("world"))
	assert.NoError(t, err)
	assert.NotEqual(t, ptr, ptr2)
	assert.Equal(t, "world", string(h.Read(ptr2, 5)))
}

func TestHeapAllocTooLong(t *testing.T) {
	h := NewHeap()
	_, err := h.Alloc([]byte(strings.Repeat("x", 256)))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestStringFromStrRoundTrip(t *testing.T) {
	h := NewHeap()
	v := NewString(h)
	_, err := v.FromStr("BASIC")
	assert.NoError(t, err)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, "BASIC", v.ToStr())
}

func TestStringAsc(t *testing.T) {
	h := NewHeap()
	v := NewString(h)
	v.FromStr("A")
	n, ok := v.Asc()
	assert.True(t, ok)
	assert.Equal(t, 65, n)

	empty := NewString(h)
	empty.FromStr("")
	_, ok = empty.Asc()
	assert.False(t, ok)
}

func TestStringConcat(t *testing.T) {
	h := NewHeap()
	a := NewString(h)
	a.FromStr("foo")
	b := NewString(h)
	b.FromStr("bar")
	_, err := a.Concat(b)
	assert.NoError(t, err)
	assert.Equal(t, "foobar", a.ToStr())
}

func TestSpace(t *testing.T) {
	h := NewHeap()
	v, err := Space(h, 3)
	assert.NoError(t, err)
	assert.Equal(t, "   ", v.ToStr())
}

func TestStringComparison(t *testing.T) {
	h := NewHeap()
	a := NewString(h)
	a.FromStr("apple")
	b := NewString(h)
	b.FromStr("banana")
	assert.True(t, b.Gt(a))
	assert.False(t, a.Eq(b))

	c := NewString(h)
	c.FromStr("apple")
	assert.True(t, a.Eq(c))
}
