package world

import (
	"errors"
	"testing"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		kind TileKind
		want []TileKind
	}{
		{Wall, []TileKind{Wall, Air}},
		{Air, []TileKind{Wall, Air, Goal}},
		{Goal, []TileKind{Air}},
	}

	for _, tc := range tests {
		got := Allowed(tc.kind)
		if len(got) != len(tc.want) {
			t.Fatalf("Allowed(%s) = %v, want %v", tc.kind, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("Allowed(%s)[%d] = %s, want %s", tc.kind, i, got[i], tc.want[i])
			}
		}
	}

	if got := Allowed(TileKind(42)); got != nil {
		t.Errorf("Allowed(unknown) = %v, want nil", got)
	}
}

func TestParseTileKind(t *testing.T) {
	for _, k := range AllKinds() {
		got, ok := ParseTileKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseTileKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseTileKind("lava"); ok {
		t.Error("ParseTileKind(lava) should fail")
	}
}

func TestCellStates(t *testing.T) {
	c := NewCell(2, 3)
	if c.Entropy() != 3 {
		t.Errorf("Fresh cell entropy = %d, want 3", c.Entropy())
	}
	if _, ok := c.Collapsed(); ok {
		t.Error("Fresh cell should not be collapsed")
	}

	c = NewCollapsedCell(2, 3, Goal)
	if kind, ok := c.Collapsed(); !ok || kind != Goal {
		t.Errorf("Collapsed() = %v, %v, want goal, true", kind, ok)
	}

	c.Possible = nil
	if !c.Contradicted() {
		t.Error("Empty cell should be contradicted")
	}
}

func TestCellCloneIsIndependent(t *testing.T) {
	c := NewCell(0, 0)
	clone := c.Clone()
	clone.Possible[0] = Goal

	if c.Possible[0] != Wall {
		t.Errorf("Mutating clone changed original: %v", c.Possible)
	}
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	counts := g.Counts()
	if counts.Unconstrained != 12 {
		t.Errorf("Expected 12 unconstrained cells, got %+v", counts)
	}

	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			c, ok := g.Get(x, y)
			if !ok {
				t.Fatalf("Get(%d,%d) reported out of bounds", x, y)
			}
			if c.X != x || c.Y != y {
				t.Errorf("Cell at (%d,%d) carries position (%d,%d)", x, y, c.X, c.Y)
			}
		}
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 5}} {
		if _, err := NewGrid(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewGrid(%d,%d) error = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestGridStorageOrder(t *testing.T) {
	g, _ := NewGrid(3, 5)
	cells := g.Cells()

	// Linear index is x*height + y.
	c := cells[2*5+4]
	if c.X != 2 || c.Y != 4 {
		t.Errorf("cells[14] = (%d,%d), want (2,4)", c.X, c.Y)
	}
}

func TestGridBoundsSafety(t *testing.T) {
	g, _ := NewGrid(4, 4)
	before := g.Clone()

	outside := [][2]int{{4, 0}, {0, 4}, {4, 4}, {-1, 0}, {0, -1}, {100, 100}}
	for _, p := range outside {
		if g.InBounds(p[0], p[1]) {
			t.Errorf("InBounds(%d,%d) = true", p[0], p[1])
		}
		if _, ok := g.Get(p[0], p[1]); ok {
			t.Errorf("Get(%d,%d) returned a cell", p[0], p[1])
		}
		g.Set(p[0], p[1], NewCollapsedCell(p[0], p[1], Goal))
	}

	if !g.Equal(before) {
		t.Error("Out of bounds Set mutated the grid")
	}
}

func TestGridSetStoresCopy(t *testing.T) {
	g, _ := NewGrid(2, 2)

	c := NewCollapsedCell(9, 9, Air)
	g.Set(1, 0, c)
	c.Possible[0] = Goal

	got, _ := g.Get(1, 0)
	if kind, ok := got.Collapsed(); !ok || kind != Air {
		t.Errorf("Stored cell = %v, want [air]", got.Possible)
	}
	if got.X != 1 || got.Y != 0 {
		t.Errorf("Stored cell position = (%d,%d), want (1,0)", got.X, got.Y)
	}

	// Copies returned by Get must not alias storage either.
	got.Possible[0] = Wall
	again, _ := g.Get(1, 0)
	if again.Possible[0] != Air {
		t.Error("Get returned a cell aliasing grid storage")
	}
}

func TestGridCounts(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.Set(0, 0, NewCollapsedCell(0, 0, Wall))
	g.Set(0, 1, Cell{Possible: []TileKind{Wall, Air}})
	g.Set(1, 0, Cell{})

	want := Counts{Unconstrained: 1, Constrained: 1, Collapsed: 1, Contradicted: 1}
	if got := g.Counts(); got != want {
		t.Errorf("Counts() = %+v, want %+v", got, want)
	}
}
