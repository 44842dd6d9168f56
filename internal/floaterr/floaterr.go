// Package floaterr classifies the numeric kernels' sentinel errors
// (internal/mbf's ErrOverflow, ErrDivisionByZero, ErrDomain) into the
// dialect's three float error conditions and decides, per spec.md
// §4.D, whether each is soft (print a message, substitute a saturated
// value, keep running) or hard (abort the running line). Logging is
// wired the way gmofishsauce-kryptco-kr's logging.go wires
// github.com/op/go-logging: one package-level leveled logger.
package floaterr

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"

	"github.com/marioaugustorama/pcbasic/internal/console"
	"github.com/marioaugustorama/pcbasic/internal/mbf"
)

var log = logging.MustGetLogger("floaterr")

// Condition is one of the dialect's named error conditions (spec.md
// §4.D, §7).
type Condition int

const (
	// ConditionNone means err was nil; Handle is a no-op.
	ConditionNone Condition = iota
	// ConditionOverflow: OVERFLOW, soft unless DoRaise.
	ConditionOverflow
	// ConditionDivisionByZero: DIVISION BY ZERO, soft unless DoRaise.
	ConditionDivisionByZero
	// ConditionIllegalFunctionCall: IFC, always hard.
	ConditionIllegalFunctionCall
)

func (c Condition) String() string {
	switch c {
	case ConditionOverflow:
		return "Overflow"
	case ConditionDivisionByZero:
		return "Division by zero"
	case ConditionIllegalFunctionCall:
		return "Illegal function call"
	}
	return "None"
}

// Classify maps one of internal/mbf's sentinel errors to a Condition.
// Any other error (a host bug, not a dialect condition) is returned
// unclassified so the caller can propagate it verbatim.
func Classify(err error) (Condition, bool) {
	switch {
	case err == nil:
		return ConditionNone, true
	case errors.Is(err, mbf.ErrOverflow):
		return ConditionOverflow, true
	case errors.Is(err, mbf.ErrDivisionByZero):
		return ConditionDivisionByZero, true
	case errors.Is(err, mbf.ErrDomain):
		return ConditionIllegalFunctionCall, true
	}
	return ConditionNone, false
}

// Handler decides soft-vs-hard handling and writes to a Screen.
// DoRaise forces even the normally-soft conditions (Overflow, Division
// by zero) to raise a hard BasicError, the dialect's "ON ERROR"
// equivalent of trapping float conditions instead of printing through
// them (spec.md §4.D).
type Handler struct {
	Screen  console.Screen
	DoRaise bool
}

// NewHandler returns a Handler writing to screen, raising nothing by
// default (the REPL/batch default: print and saturate).
func NewHandler(screen console.Screen) *Handler {
	return &Handler{Screen: screen}
}

// BasicError is a classified, possibly-hard dialect error condition.
type BasicError struct {
	Condition Condition
	Hard      bool
}

func (e *BasicError) Error() string {
	return e.Condition.String()
}

// Handle classifies err (nil is a no-op, returning nil) and either
// prints a soft-error message through the Screen and returns nil (so
// the caller keeps running with its already-saturated value), or
// returns a *BasicError for the caller to propagate as a hard abort.
func (h *Handler) Handle(err error) error {
	if err == nil {
		return nil
	}
	cond, known := Classify(err)
	if !known {
		return err
	}
	hard := cond == ConditionIllegalFunctionCall || h.DoRaise
	log.Debugf("float condition %s hard=%v", cond, hard)
	if hard {
		return &BasicError{Condition: cond, Hard: true}
	}
	if h.Screen != nil {
		h.Screen.Error(fmt.Sprintf("%s", cond))
	}
	return nil
}
