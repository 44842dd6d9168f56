package floaterr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marioaugustorama/pcbasic/internal/console"
	"github.com/marioaugustorama/pcbasic/internal/mbf"
)

func TestHandleSoftOverflowPrintsAndContinues(t *testing.T) {
	scr := &console.Buffer{}
	h := NewHandler(scr)
	err := h.Handle(mbf.ErrOverflow)
	assert.NoError(t, err)
	assert.Len(t, scr.Errors, 1)
	assert.Contains(t, scr.Errors[0], "Overflow")
}

func TestHandleDoRaiseMakesOverflowHard(t *testing.T) {
	scr := &console.Buffer{}
	h := &Handler{Screen: scr, DoRaise: true}
	err := h.Handle(mbf.ErrOverflow)
	var be *BasicError
	assert.True(t, errors.As(err, &be))
	assert.True(t, be.Hard)
	assert.Equal(t, ConditionOverflow, be.Condition)
}

func TestHandleDomainAlwaysHard(t *testing.T) {
	scr := &console.Buffer{}
	h := NewHandler(scr)
	err := h.Handle(mbf.ErrDomain)
	var be *BasicError
	assert.True(t, errors.As(err, &be))
	assert.Equal(t, ConditionIllegalFunctionCall, be.Condition)
}

func TestHandleNilIsNoop(t *testing.T) {
	h := NewHandler(&console.Buffer{})
	assert.NoError(t, h.Handle(nil))
}

func TestClassifyUnknownError(t *testing.T) {
	_, ok := Classify(errors.New("something else"))
	assert.False(t, ok)
}
