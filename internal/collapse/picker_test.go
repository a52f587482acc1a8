package collapse

import (
	"errors"
	"math/rand"
	"testing"
)

func TestChooseEmpty(t *testing.T) {
	p := NewRandPicker(rand.New(rand.NewSource(1)))

	if _, err := Choose(p, []int{}); !errors.Is(err, ErrEmptyChoice) {
		t.Errorf("Choose(empty) error = %v, want ErrEmptyChoice", err)
	}
	if _, err := p.Pick(0); !errors.Is(err, ErrEmptyChoice) {
		t.Errorf("Pick(0) error = %v, want ErrEmptyChoice", err)
	}
}

func TestChooseUniformCoverage(t *testing.T) {
	p := NewRandPicker(rand.New(rand.NewSource(7)))
	items := []string{"a", "b", "c"}

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		v, err := Choose(p, items)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		seen[v]++
	}

	for _, item := range items {
		if seen[item] == 0 {
			t.Errorf("Item %q never chosen in 300 draws", item)
		}
	}
}

func TestRecordAndReplay(t *testing.T) {
	rec := NewRecordingPicker(NewRandPicker(rand.New(rand.NewSource(99))))

	var first []int
	for _, n := range []int{3, 5, 1, 8} {
		i, err := rec.Pick(n)
		if err != nil {
			t.Fatalf("Pick(%d) failed: %v", n, err)
		}
		first = append(first, i)
	}

	replay := NewReplayPicker(rec.Trace())
	for step, n := range []int{3, 5, 1, 8} {
		i, err := replay.Pick(n)
		if err != nil {
			t.Fatalf("Replay pick %d failed: %v", step, err)
		}
		if i != first[step] {
			t.Errorf("Replay pick %d = %d, want %d", step, i, first[step])
		}
	}

	if replay.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", replay.Remaining())
	}
	if _, err := replay.Pick(3); !errors.Is(err, ErrTraceExhausted) {
		t.Errorf("Pick past end error = %v, want ErrTraceExhausted", err)
	}
}

func TestReplayOutOfRange(t *testing.T) {
	replay := NewReplayPicker([]int{4})
	if _, err := replay.Pick(2); !errors.Is(err, ErrPickOutOfRange) {
		t.Errorf("Pick error = %v, want ErrPickOutOfRange", err)
	}
}

func TestChooseRejectsBadPicker(t *testing.T) {
	_, err := Choose(NewReplayPicker([]int{-1}), []int{1, 2})
	if !errors.Is(err, ErrPickOutOfRange) {
		t.Errorf("Choose error = %v, want ErrPickOutOfRange", err)
	}
}
