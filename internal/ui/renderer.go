package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/world"
)

// Frame is everything drawn in one screen refresh.
type Frame struct {
	Rooms    []world.Room
	Hallways []world.Hallway
	// Overlay edges are drawn as straight lines between room centers.
	Overlay  []world.Edge
	Viewport world.Viewport
	Paint    world.PaintOptions
	// Status is shown on the row below the viewport.
	Status string
}

// Renderer handles drawing the dungeon to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the frame to the screen.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	world.Paint(f.Rooms, f.Hallways, f.Viewport, f.Paint, func(x, y int, t world.Tile) {
		r.screen.SetContent(x, y, t.Rune(), r.getTileStyle(t))
	})

	// Graph overlay on top
	edgeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	v := f.Viewport
	for _, e := range f.Overlay {
		if e.Src >= len(f.Rooms) || e.Dest >= len(f.Rooms) {
			continue
		}
		world.DrawLine(v, f.Rooms[e.Src].Center, f.Rooms[e.Dest].Center, func(x, y int) {
			if x >= 0 && x < v.Cols && y >= 0 && y < v.Rows {
				r.screen.SetContent(x, y, '*', edgeStyle)
			}
		})
	}

	r.RenderMessage(f.Status, v.Rows)
	r.screen.Show()
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileMainRoom:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case world.TileIncluded:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.TileRoom:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileHallway:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
