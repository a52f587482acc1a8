// Package world provides the tile grid that the collapse solver narrows.
package world

// TileKind is one of the concrete states a cell can resolve to.
type TileKind int

const (
	// Wall is an impassable tile.
	Wall TileKind = iota
	// Air is open space.
	Air
	// Goal marks a target tile. It may only border Air.
	Goal
)

// AllKinds returns the full possibility set in canonical order.
// A fresh slice is returned on every call.
func AllKinds() []TileKind {
	return []TileKind{Wall, Air, Goal}
}

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Air:
		return "air"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// Allowed returns the kinds permitted in each 4-connected neighbour of a cell
// that has collapsed to k. The table is applied outward only; it is not a
// symmetric pairwise constraint.
func Allowed(k TileKind) []TileKind {
	switch k {
	case Wall:
		return []TileKind{Wall, Air}
	case Air:
		return []TileKind{Wall, Air, Goal}
	case Goal:
		return []TileKind{Air}
	default:
		return nil
	}
}

// ParseTileKind maps a kind name back to its TileKind.
func ParseTileKind(name string) (TileKind, bool) {
	for _, k := range AllKinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
