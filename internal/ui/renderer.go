package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilewave/internal/tiledata"
	"github.com/samdwyer/tilewave/internal/world"
)

// Status is the line drawn under the grid.
type Status struct {
	Seed    int64
	Rounds  int
	Outcome string
	Err     error
}

// Renderer handles drawing a grid to the screen.
type Renderer struct {
	screen *Screen
	tiles  *tiledata.TileSet
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, tiles *tiledata.TileSet) *Renderer {
	return &Renderer{screen: screen, tiles: tiles}
}

// Render draws the grid, two columns per cell, followed by a status line.
func (r *Renderer) Render(g *world.Grid, status Status) {
	r.screen.Clear()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c, _ := g.Get(x, y)
			def := r.tiles.ForCell(c)
			style := r.cellStyle(c, def)
			r.screen.SetContent(2*x, y, def.GlyphRune(), style)
			r.screen.SetContent(2*x+1, y, def.GlyphRune(), style)
		}
	}

	r.RenderMessage(statusLine(status), g.Height+1, status.Err != nil)
	r.RenderMessage("r: regenerate  e: toggle edge guard  q: quit", g.Height+2, false)
	r.screen.Show()
}

// cellStyle returns the style for a cell.
func (r *Renderer) cellStyle(c world.Cell, def tiledata.TileDef) tcell.Style {
	style := tcell.StyleDefault.Foreground(def.TCellColor())
	if c.Contradicted() {
		return style.Background(tcell.ColorDarkRed)
	}
	if kind, ok := c.Collapsed(); ok && kind == world.Wall {
		return style.Background(def.TCellColor())
	}
	return style
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int, alert bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if alert {
		style = style.Foreground(tcell.ColorRed).Bold(true)
	}
	r.screen.SetString(0, y, msg, style)
}

func statusLine(s Status) string {
	line := fmt.Sprintf("seed %d  rounds %d  %s", s.Seed, s.Rounds, s.Outcome)
	if s.Err != nil {
		line += ": " + s.Err.Error()
	}
	return line
}
