package collapse

import (
	"fmt"

	"github.com/samdwyer/tilewave/internal/world"
)

// EntropyNone is returned by LowestEntropy once every cell has collapsed.
// It is larger than any real possibility-set size.
const EntropyNone = 100

// LowestEntropy returns the smallest possibility-set size among cells that are
// not collapsed. Contradicted cells count with entropy 0 so that they are the
// first candidates picked and surface as ErrContradiction.
func LowestEntropy(g *world.Grid) int {
	lowest := EntropyNone
	g.Each(func(c world.Cell) {
		n := c.Entropy()
		if n != 1 && n < lowest {
			lowest = n
		}
	})
	return lowest
}

// Candidates returns the cells whose entropy equals entropy, in storage order.
func Candidates(g *world.Grid, entropy int) []world.Cell {
	var out []world.Cell
	g.Each(func(c world.Cell) {
		if c.Entropy() == entropy {
			out = append(out, c.Clone())
		}
	})
	return out
}

// Select picks one minimum-entropy cell uniformly at random.
func Select(g *world.Grid, p Picker) (world.Cell, error) {
	return selectAt(g, p, LowestEntropy(g))
}

func selectAt(g *world.Grid, p Picker, entropy int) (world.Cell, error) {
	candidates := Candidates(g, entropy)
	if len(candidates) == 0 {
		return world.Cell{}, ErrSelectionExhausted
	}
	return Choose(p, candidates)
}

// Collapse forces the cell at (x, y) to one kind drawn uniformly from its
// possibility set. A cell with nothing left to draw from is a contradiction.
func Collapse(g *world.Grid, p Picker, x, y int) (world.TileKind, error) {
	cell, ok := g.Get(x, y)
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if cell.Contradicted() {
		return 0, ErrContradiction
	}

	kind, err := Choose(p, cell.Possible)
	if err != nil {
		return 0, err
	}
	g.Set(x, y, world.NewCollapsedCell(x, y, kind))
	return kind, nil
}
