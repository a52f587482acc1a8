package ui

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/samdwyer/tilewave/internal/world"
)

const placeholder = ".."

// TextOptions controls plain-text rendering.
type TextOptions struct {
	// Color wraps each glyph in ANSI color codes.
	Color bool
}

// RenderText writes g row by row (y outer, x inner). Each collapsed cell is
// drawn as its glyph doubled horizontally; any other cell is drawn as "..".
func RenderText(w io.Writer, g *world.Grid, opts TextOptions) error {
	au := aurora.NewAurora(opts.Color)
	bw := bufio.NewWriter(w)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c, _ := g.Get(x, y)
			if _, err := bw.WriteString(cellText(au, c)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func cellText(au aurora.Aurora, c world.Cell) string {
	kind, ok := c.Collapsed()
	if !ok {
		if c.Contradicted() {
			return au.Red(placeholder).String()
		}
		return au.Gray(8, placeholder).String()
	}

	glyph := string([]rune{kindGlyph(kind), kindGlyph(kind)})
	switch kind {
	case world.Wall:
		return au.White(glyph).BgGray(8).String()
	case world.Goal:
		return au.Yellow(glyph).Bold().String()
	default:
		return glyph
	}
}

// kindGlyph is the fixed console glyph for each kind.
func kindGlyph(kind world.TileKind) rune {
	switch kind {
	case world.Wall:
		return '#'
	case world.Air:
		return ' '
	case world.Goal:
		return 'g'
	default:
		return '?'
	}
}
