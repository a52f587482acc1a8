package tiledata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilewave/internal/world"
)

// PlaceholderID is the tiles.json entry used for cells that have not collapsed.
const PlaceholderID = "unresolved"

// TileDef describes how one tile kind is drawn.
type TileDef struct {
	ID    string `json:"id"`    // Matches world.TileKind.String(), or PlaceholderID
	Glyph string `json:"glyph"` // Single character, doubled horizontally when drawn
	Color string `json:"color"` // Hex color code (e.g., "#808080")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// TileSet maps every tile kind, plus the placeholder, to its definition.
type TileSet struct {
	kinds       map[world.TileKind]TileDef
	placeholder TileDef
}

// NewTileSet builds a tile set, requiring a definition for every kind.
func NewTileSet(defs []TileDef) (*TileSet, error) {
	ts := &TileSet{kinds: make(map[world.TileKind]TileDef)}
	havePlaceholder := false

	for _, def := range defs {
		if def.ID == PlaceholderID {
			ts.placeholder = def
			havePlaceholder = true
			continue
		}
		kind, ok := world.ParseTileKind(def.ID)
		if !ok {
			return nil, fmt.Errorf("unknown tile kind %q in tiles.json", def.ID)
		}
		ts.kinds[kind] = def
	}

	for _, kind := range world.AllKinds() {
		if _, ok := ts.kinds[kind]; !ok {
			return nil, fmt.Errorf("tiles.json has no entry for %s", kind)
		}
	}
	if !havePlaceholder {
		return nil, fmt.Errorf("tiles.json has no %q entry", PlaceholderID)
	}
	return ts, nil
}

// LoadTileSet loads the embedded tiles.json.
func LoadTileSet() (*TileSet, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return NewTileSet(file.Tiles)
}

// MustLoadTileSet loads the tile set, panicking on error.
func MustLoadTileSet() *TileSet {
	ts, err := LoadTileSet()
	if err != nil {
		panic(err)
	}
	return ts
}

// ForCell returns the definition used to draw c.
func (ts *TileSet) ForCell(c world.Cell) TileDef {
	if kind, ok := c.Collapsed(); ok {
		return ts.kinds[kind]
	}
	return ts.placeholder
}

// ForKind returns the definition for kind.
func (ts *TileSet) ForKind(kind world.TileKind) TileDef {
	return ts.kinds[kind]
}
