package values

import (
	"github.com/marioaugustorama/pcbasic/internal/floaterr"
)

// handleErr routes a numeric kernel's error through the float error
// handler, except that an Integer condition (overflow or division by
// zero) is never soft: there is no Integer saturation, so the original's
// FloatErrorHandler.handle re-raises whenever the offending value is an
// Integer rather than a Float, regardless of DoRaise.
func (f *Facade) handleErr(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	if kind == KindInteger {
		if cond, known := floaterr.Classify(err); known {
			return &floaterr.BasicError{Condition: cond, Hard: true}
		}
		return err
	}
	return f.FloatErr.Handle(err)
}
