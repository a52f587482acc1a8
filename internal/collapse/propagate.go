package collapse

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/tilewave/internal/world"
)

// Direction names one of the four axis-aligned neighbours.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions returns the neighbours in propagation order.
func Directions() []Direction {
	return []Direction{Top, Right, Bottom, Left}
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Step returns the neighbour coordinates of (x, y) in direction d.
func (d Direction) Step(x, y int) (int, int) {
	switch d {
	case Top:
		return x, y - 1
	case Right:
		return x + 1, y
	case Bottom:
		return x, y + 1
	case Left:
		return x - 1, y
	}
	return x, y
}

// EdgeGuard decides whether the top and left neighbours are visited.
type EdgeGuard int

const (
	// GuardReference visits top/left only when the coordinate is greater than 1,
	// so row and column 0 are never narrowed from their lower neighbour.
	GuardReference EdgeGuard = iota
	// GuardExact visits top/left whenever the coordinate is greater than 0.
	GuardExact
)

func (g EdgeGuard) String() string {
	if g == GuardExact {
		return "exact"
	}
	return "reference"
}

func (g EdgeGuard) allows(d Direction, x, y int) bool {
	floor := 1
	if g == GuardExact {
		floor = 0
	}
	switch d {
	case Top:
		return y > floor
	case Left:
		return x > floor
	default:
		return true
	}
}

// Edge records one neighbour narrowed by a propagation step.
type Edge struct {
	FromX, FromY int
	ToX, ToY     int
	Dir          Direction
	Kind         world.TileKind   // kind the source collapsed to
	Before       []world.TileKind // neighbour's set before narrowing
	After        []world.TileKind // neighbour's set after narrowing
}

// Propagate narrows the four neighbours of (x, y) to the kinds allowed next to
// kind. Exactly one hop: the narrowed neighbours are not revisited. The
// intersection is written back even when it is empty.
func Propagate(g *world.Grid, x, y int, kind world.TileKind, guard EdgeGuard) []Edge {
	allowed := mapset.New[world.TileKind]()
	for _, k := range world.Allowed(kind) {
		allowed.Put(k)
	}

	edges := make([]Edge, 0, 4)
	for _, dir := range Directions() {
		if !guard.allows(dir, x, y) {
			continue
		}
		nx, ny := dir.Step(x, y)
		neighbor, ok := g.Get(nx, ny)
		if !ok {
			continue
		}

		narrowed := intersect(neighbor.Possible, allowed)
		g.Set(nx, ny, world.Cell{X: nx, Y: ny, Possible: narrowed})

		edges = append(edges, Edge{
			FromX: x, FromY: y,
			ToX: nx, ToY: ny,
			Dir:    dir,
			Kind:   kind,
			Before: neighbor.Possible,
			After:  narrowed,
		})
	}
	return edges
}

// intersect keeps the kinds of possible that are in allowed, preserving order.
func intersect(possible []world.TileKind, allowed mapset.Set[world.TileKind]) []world.TileKind {
	out := make([]world.TileKind, 0, len(possible))
	for _, k := range possible {
		if allowed.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
