package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferRecordsErrorsAndStatuses(t *testing.T) {
	b := &Buffer{}
	b.Error("OVERFLOW")
	b.Status("Ok")
	assert.Equal(t, []string{"OVERFLOW"}, b.Errors)
	assert.Equal(t, []string{"Ok"}, b.Statuses)
}

func TestNewTermDoesNotPanic(t *testing.T) {
	term := NewTerm()
	assert.NotNil(t, term)
}
