package ui

import (
	"testing"

	"github.com/samdwyer/dungeongen/internal/world"
)

func TestRenderFrame(t *testing.T) {
	screen, sim, err := NewSimulationScreen(20, 11)
	if err != nil {
		t.Fatalf("NewSimulationScreen failed: %v", err)
	}
	defer screen.Close()

	rooms := []world.Room{
		{Center: world.Point{X: -5, Y: 0}, Width: 4, Height: 4, Flags: world.FlagMainRoom | world.FlagIncluded},
		{Center: world.Point{X: 5, Y: 0}, Width: 4, Height: 4},
	}
	frame := Frame{
		Rooms:    rooms,
		Hallways: []world.Hallway{{Start: rooms[0].Center, Middle: rooms[1].Center, End: rooms[1].Center}},
		Viewport: world.Viewport{Cols: 20, Rows: 10, Zoom: 1},
		Paint:    world.PaintOptions{Hallways: 1},
		Status:   "ok",
	}
	NewRenderer(screen).Render(frame)

	cell := func(x, y int) rune {
		r, _, _, _ := sim.GetContent(x, y)
		return r
	}

	// Room 0 spans x in [-7,-3), which is cells 3..6 around the center column 10.
	if got := cell(3, 3); got != rune(world.TileMainRoom) {
		t.Errorf("Expected main room tile at (3,3), got %q", got)
	}
	if got := cell(13, 3); got != rune(world.TileRoom) {
		t.Errorf("Expected room tile at (13,3), got %q", got)
	}
	if got := cell(10, 5); got != rune(world.TileHallway) {
		t.Errorf("Expected hallway tile at (10,5), got %q", got)
	}
	if got := cell(0, 10); got != 'o' {
		t.Errorf("Expected status line on row 10, got %q", got)
	}
}
