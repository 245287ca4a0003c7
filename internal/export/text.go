package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	mapCols = 100
	mapRows = 40
)

// WriteText writes a human-readable summary followed by an ASCII map.
func WriteText(w io.Writer, d *world.Dungeon) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "rooms:      %d\n", len(d.Rooms))
	fmt.Fprintf(bw, "main rooms: %d\n", d.MainRoomCount())
	fmt.Fprintf(bw, "included:   %d\n", d.IncludedCount())
	fmt.Fprintf(bw, "edges:      %d candidate, %d tree, %d retained\n",
		len(d.Graph.Candidates), len(d.Graph.Tree), len(d.Graph.Retained))
	fmt.Fprintf(bw, "hallways:   %d\n", d.HallwayCount())
	fmt.Fprintf(bw, "separation: %d iterations, converged=%v\n", d.Iterations, d.Converged)
	if d.TruncatedIndices > 0 {
		fmt.Fprintf(bw, "warning:    %d triangulation indices ignored\n", d.TruncatedIndices)
	}

	for i, h := range d.Hallways {
		fmt.Fprintf(bw, "\nhallway %d\n", i)
		fmt.Fprintf(bw, "  start  %s\n", fmtPoint(h.Start))
		fmt.Fprintf(bw, "  middle %s\n", fmtPoint(h.Middle))
		fmt.Fprintf(bw, "  end    %s\n", fmtPoint(h.End))
	}

	bw.WriteString("\n")
	for _, line := range Map(d, mapCols, mapRows) {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Map paints the included rooms and every hallway onto a cols x rows
// character grid fitted to the dungeon.
func Map(d *world.Dungeon, cols, rows int) []string {
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = world.TileEmpty.Rune()
		}
	}

	v := world.Fit(d.Rooms, cols, rows)
	world.Paint(d.Rooms, d.Hallways, v, world.PaintOptions{
		Rooms:    func(r world.Room) bool { return r.Flags.Included() },
		Hallways: len(d.Hallways),
	}, func(x, y int, t world.Tile) {
		grid[y][x] = t.Rune()
	})

	lines := make([]string, rows)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	return lines
}
