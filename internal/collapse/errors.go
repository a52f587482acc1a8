package collapse

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyChoice        = errors.New("collapse: cannot choose from an empty sequence")
	ErrPickOutOfRange     = errors.New("collapse: picker returned an index out of range")
	ErrTraceExhausted     = errors.New("collapse: recorded pick trace exhausted")
	ErrSelectionExhausted = errors.New("collapse: no minimum-entropy candidate remains")
	ErrContradiction      = errors.New("collapse: contradiction - no valid kinds for cell")
	ErrOutOfBounds        = errors.New("collapse: position outside the grid")
)

// RoundError reports the round, and the cell when one was chosen, at which a
// run failed. X and Y are -1 when the failure happened before a cell was picked.
type RoundError struct {
	Round int
	X, Y  int
	Err   error
}

func (e *RoundError) Error() string {
	if e.X < 0 || e.Y < 0 {
		return fmt.Sprintf("round %d: %v", e.Round, e.Err)
	}
	return fmt.Sprintf("round %d: cell (%d,%d): %v", e.Round, e.X, e.Y, e.Err)
}

func (e *RoundError) Unwrap() error {
	return e.Err
}
