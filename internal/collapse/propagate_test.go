package collapse

import (
	"testing"

	"github.com/samdwyer/tilewave/internal/world"
)

func TestIntersectKeepsNeighbourOrder(t *testing.T) {
	g := newGrid(t, 3, 1)
	g.Set(1, 0, world.Cell{Possible: []world.TileKind{world.Goal, world.Air, world.Wall}})

	Propagate(g, 0, 0, world.Wall, GuardReference)

	c, _ := g.Get(1, 0)
	want := []world.TileKind{world.Air, world.Wall}
	if !sameKinds(c.Possible, want) {
		t.Errorf("Narrowed set = %v, want %v", c.Possible, want)
	}
}

func TestPropagateGuards(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		guard EdgeGuard
		dirs  []Direction
	}{
		{"reference skips top and left at 1", 1, 1, GuardReference, []Direction{Right, Bottom}},
		{"reference visits all at 2", 2, 2, GuardReference, []Direction{Top, Right, Bottom, Left}},
		{"exact visits top and left at 1", 1, 1, GuardExact, []Direction{Top, Right, Bottom, Left}},
		{"exact skips at 0", 0, 0, GuardExact, []Direction{Right, Bottom}},
		{"reference at 0", 0, 0, GuardReference, []Direction{Right, Bottom}},
		{"far corner", 4, 4, GuardReference, []Direction{Top, Left}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(t, 5, 5)
			g.Set(tc.x, tc.y, world.NewCollapsedCell(tc.x, tc.y, world.Goal))

			edges := Propagate(g, tc.x, tc.y, world.Goal, tc.guard)
			if len(edges) != len(tc.dirs) {
				t.Fatalf("Got %d edges, want %d: %+v", len(edges), len(tc.dirs), edges)
			}
			for i, e := range edges {
				if e.Dir != tc.dirs[i] {
					t.Errorf("Edge %d direction = %s, want %s", i, e.Dir, tc.dirs[i])
				}
				c, _ := g.Get(e.ToX, e.ToY)
				if !sameKinds(c.Possible, []world.TileKind{world.Air}) {
					t.Errorf("Neighbour (%d,%d) = %v, want [air]", e.ToX, e.ToY, c.Possible)
				}
			}
		})
	}
}

func TestPropagateReferenceQuirkLeavesNeighbourUntouched(t *testing.T) {
	g := newGrid(t, 3, 3)
	Propagate(g, 1, 1, world.Goal, GuardReference)

	for _, p := range [][2]int{{1, 0}, {0, 1}} {
		c, _ := g.Get(p[0], p[1])
		if c.Entropy() != 3 {
			t.Errorf("Cell (%d,%d) narrowed to %v under the reference guard", p[0], p[1], c.Possible)
		}
	}
}

func TestPropagateIsOneHop(t *testing.T) {
	g := newGrid(t, 5, 5)
	Propagate(g, 2, 2, world.Goal, GuardExact)

	// Diagonals and distance-2 cells stay unconstrained.
	for _, p := range [][2]int{{3, 3}, {1, 1}, {4, 2}, {2, 0}} {
		c, _ := g.Get(p[0], p[1])
		if c.Entropy() != 3 {
			t.Errorf("Cell (%d,%d) = %v, want untouched", p[0], p[1], c.Possible)
		}
	}
}

func TestPropagateOnCollapsedNeighbour(t *testing.T) {
	g := newGrid(t, 2, 1)
	g.Set(1, 0, world.NewCollapsedCell(1, 0, world.Air))

	Propagate(g, 0, 0, world.Wall, GuardReference)

	c, _ := g.Get(1, 0)
	if kind, ok := c.Collapsed(); !ok || kind != world.Air {
		t.Errorf("Collapsed neighbour changed to %v", c.Possible)
	}
}
