package world

import (
	"errors"
	"fmt"
)

const (
	// Reference grid dimensions
	DefaultWidth  = 30
	DefaultHeight = 30
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("world: invalid grid size")

// Grid is a fixed-size rectangle of cells. It exclusively owns every cell;
// accessors hand out copies.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// Counts tallies cells by lifecycle state.
type Counts struct {
	Unconstrained int
	Constrained   int
	Collapsed     int
	Contradicted  int
}

// NewGrid creates a grid with every cell unconstrained.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	cells := make([]Cell, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cells = append(cells, NewCell(x, y))
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps a position to storage order (column-major).
func (g *Grid) index(x, y int) int {
	return x*g.Height + y
}

// Get returns a copy of the cell at (x, y), or false if out of bounds.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)].Clone(), true
}

// Set overwrites the cell at (x, y). Out of bounds writes are ignored.
// The stored cell always carries the target position.
func (g *Grid) Set(x, y int, cell Cell) {
	if !g.InBounds(x, y) {
		return
	}
	stored := cell.Clone()
	stored.X, stored.Y = x, y
	g.cells[g.index(x, y)] = stored
}

// Cells returns a copy of every cell in storage order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Clone()
	}
	return out
}

// Each calls fn for every cell in storage order without copying.
// fn must not retain or modify the cell's possibility slice.
func (g *Grid) Each(fn func(c Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  g.Cells(),
	}
}

// Counts tallies the grid's cells by state.
func (g *Grid) Counts() Counts {
	var counts Counts
	full := len(AllKinds())
	for _, c := range g.cells {
		switch n := c.Entropy(); {
		case n == 0:
			counts.Contradicted++
		case n == 1:
			counts.Collapsed++
		case n >= full:
			counts.Unconstrained++
		default:
			counts.Constrained++
		}
	}
	return counts
}

// Equal returns true if both grids have the same size and possibility sets.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		a, b := g.cells[i].Possible, other.cells[i].Possible
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
