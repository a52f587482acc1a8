// Package app wires configuration, generation and rendering together.
package app

import "github.com/samdwyer/tilewave/internal/collapse"

// State represents what the viewer is currently showing.
type State int

const (
	// StateGenerated means the last run used its full round budget.
	StateGenerated State = iota
	// StateStalled means the last run ran out of candidate cells.
	StateStalled
	// StateContradicted means the last run hit a cell with no possible kind.
	StateContradicted
	// StateFailed means the last run stopped for another reason.
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateGenerated:
		return "generated"
	case StateStalled:
		return "stalled"
	case StateContradicted:
		return "contradicted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StateFor maps a run outcome to the viewer state.
func StateFor(o collapse.Outcome) State {
	switch o {
	case collapse.OutcomeCompleted:
		return StateGenerated
	case collapse.OutcomeStalled:
		return StateStalled
	case collapse.OutcomeContradicted:
		return StateContradicted
	default:
		return StateFailed
	}
}
