package collapse

import (
	"fmt"
	"math/rand"
)

// Picker is the injected random-choice capability. Pick returns an index in
// [0, n) drawn uniformly, or ErrEmptyChoice when n <= 0.
type Picker interface {
	Pick(n int) (int, error)
}

// Choose uniformly picks one element of items.
func Choose[T any](p Picker, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyChoice
	}

	i, err := p.Pick(len(items))
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(items) {
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrPickOutOfRange, i, len(items))
	}
	return items[i], nil
}

// RandPicker draws indices from a seeded math/rand source.
type RandPicker struct {
	rng *rand.Rand
}

// NewRandPicker creates a picker over rng.
func NewRandPicker(rng *rand.Rand) *RandPicker {
	return &RandPicker{rng: rng}
}

// Pick returns a uniform index in [0, n).
func (p *RandPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyChoice
	}
	return p.rng.Intn(n), nil
}

// RecordingPicker forwards to another picker and remembers every index handed out.
type RecordingPicker struct {
	inner Picker
	trace []int
}

// NewRecordingPicker wraps inner.
func NewRecordingPicker(inner Picker) *RecordingPicker {
	return &RecordingPicker{inner: inner}
}

func (p *RecordingPicker) Pick(n int) (int, error) {
	i, err := p.inner.Pick(n)
	if err != nil {
		return 0, err
	}
	p.trace = append(p.trace, i)
	return i, nil
}

// Trace returns a copy of the recorded indices.
func (p *RecordingPicker) Trace() []int {
	out := make([]int, len(p.trace))
	copy(out, p.trace)
	return out
}

// ReplayPicker plays back a recorded trace of indices.
type ReplayPicker struct {
	trace []int
	pos   int
}

// NewReplayPicker creates a picker that returns trace in order.
func NewReplayPicker(trace []int) *ReplayPicker {
	return &ReplayPicker{trace: trace}
}

func (p *ReplayPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyChoice
	}
	if p.pos >= len(p.trace) {
		return 0, ErrTraceExhausted
	}
	i := p.trace[p.pos]
	p.pos++
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrPickOutOfRange, i, n)
	}
	return i, nil
}

// Remaining returns how many recorded picks have not been consumed.
func (p *ReplayPicker) Remaining() int {
	return len(p.trace) - p.pos
}
