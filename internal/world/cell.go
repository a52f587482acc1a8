package world

// Cell is a grid position plus the kinds it has not yet ruled out.
type Cell struct {
	X, Y     int
	Possible []TileKind
}

// NewCell creates an unconstrained cell at the given position.
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y, Possible: AllKinds()}
}

// NewCollapsedCell creates a cell already resolved to kind.
func NewCollapsedCell(x, y int, kind TileKind) Cell {
	return Cell{X: x, Y: y, Possible: []TileKind{kind}}
}

// Entropy returns the size of the possibility set.
func (c Cell) Entropy() int {
	return len(c.Possible)
}

// Collapsed returns the resolved kind when exactly one kind remains.
func (c Cell) Collapsed() (TileKind, bool) {
	if len(c.Possible) == 1 {
		return c.Possible[0], true
	}
	return 0, false
}

// Contradicted returns true once no kind satisfies the propagated constraints.
func (c Cell) Contradicted() bool {
	return len(c.Possible) == 0
}

// Has returns true if kind is still possible.
func (c Cell) Has(kind TileKind) bool {
	for _, k := range c.Possible {
		if k == kind {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no storage with c.
func (c Cell) Clone() Cell {
	possible := make([]TileKind, len(c.Possible))
	copy(possible, c.Possible)
	return Cell{X: c.X, Y: c.Y, Possible: possible}
}
