package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envelope(num int, body string) []byte {
	out := []byte{0x00, 0xC0, 0xDE, byte(num), byte(num >> 8)}
	return append(out, []byte(body)...)
}

func TestInsertKeepsSortedOrder(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Insert(envelope(20, "PRINT 2")))
	assert.NoError(t, s.Insert(envelope(10, "PRINT 1")))
	assert.NoError(t, s.Insert(envelope(30, "PRINT 3")))

	lines := s.List()
	assert.Equal(t, []int{10, 20, 30}, []int{lines[0].Num, lines[1].Num, lines[2].Num})
}

func TestInsertReplacesExistingLineNumber(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Insert(envelope(10, "PRINT 1")))
	assert.NoError(t, s.Insert(envelope(10, "PRINT 99")))

	line, ok := s.Get(10)
	assert.True(t, ok)
	assert.Equal(t, envelope(10, "PRINT 99"), line.Body)
	assert.Equal(t, 1, s.Len())
}

func TestInsertBareEnvelopeDeletesLine(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Insert(envelope(10, "PRINT 1")))
	assert.NoError(t, s.Insert(envelope(10, "")))

	_, ok := s.Get(10)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestInsertRejectsDirectModeLine(t *testing.T) {
	s := NewStore()
	err := s.Insert([]byte{':', 'P', 'R'})
	assert.ErrorIs(t, err, ErrNoLineNumber)
}

func TestGetMissingLine(t *testing.T) {
	s := NewStore()
	_, ok := s.Get(5)
	assert.False(t, ok)
}
