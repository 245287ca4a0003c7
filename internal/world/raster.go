package world

import "math"

// Viewport maps dungeon units onto a grid of character cells. The dungeon
// origin sits at the grid center, shifted by the offset.
type Viewport struct {
	Cols, Rows int
	// Zoom is the number of cells per dungeon unit.
	Zoom float64
	// OffsetX and OffsetY pan the view, in dungeon units.
	OffsetX, OffsetY float64
}

// Project returns the cell a dungeon point falls in.
func (v Viewport) Project(p Point) (int, int) {
	x := int(math.Floor((p.X+v.OffsetX)*v.Zoom)) + v.Cols/2
	y := int(math.Floor((p.Y+v.OffsetY)*v.Zoom)) + v.Rows/2
	return x, y
}

// Fit returns a viewport of the given size zoomed so every room is visible.
func Fit(rooms []Room, cols, rows int) Viewport {
	v := Viewport{Cols: cols, Rows: rows, Zoom: 1}
	if len(rooms) == 0 {
		return v
	}

	b := rooms[0].Bounds()
	for _, r := range rooms[1:] {
		rb := r.Bounds()
		b.Left = math.Min(b.Left, rb.Left)
		b.Right = math.Max(b.Right, rb.Right)
		b.Top = math.Min(b.Top, rb.Top)
		b.Bottom = math.Max(b.Bottom, rb.Bottom)
	}

	w, h := b.Right-b.Left, b.Bottom-b.Top
	if w > 0 && h > 0 {
		v.Zoom = math.Min(float64(cols)/w, float64(rows)/h)
	}
	v.OffsetX = -(b.Left + b.Right) / 2
	v.OffsetY = -(b.Top + b.Bottom) / 2
	return v
}

// PaintOptions selects what Paint draws.
type PaintOptions struct {
	// Rooms decides which rooms are drawn. Nil draws every room.
	Rooms func(Room) bool
	// Hallways is how many hallways, from the first, are drawn.
	Hallways int
}

// Paint draws rooms and hallways through set, clipped to the viewport.
// Hallways are drawn over rooms. Only cells inside the viewport are
// visited, whatever the zoom.
func Paint(rooms []Room, hallways []Hallway, v Viewport, opts PaintOptions, set func(x, y int, t Tile)) {
	for _, r := range rooms {
		if opts.Rooms != nil && !opts.Rooms(r) {
			continue
		}
		b := r.Bounds()
		x0, y0 := v.Project(Point{X: b.Left, Y: b.Top})
		x1, y1 := v.Project(Point{X: b.Right, Y: b.Bottom})
		x1, y1 = max(x1, x0+1), max(y1, y0+1)
		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, v.Cols), min(y1, v.Rows)
		tile := TileFor(r)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				set(x, y, tile)
			}
		}
	}

	plot := func(x, y int) { set(x, y, TileHallway) }
	for i := 0; i < opts.Hallways && i < len(hallways); i++ {
		h := hallways[i]
		DrawLine(v, h.Start, h.Middle, plot)
		DrawLine(v, h.Middle, h.End, plot)
	}
}

// DrawLine calls plot for every cell of the projected line from a to b
// that falls inside the viewport.
func DrawLine(v Viewport, a, b Point, plot func(x, y int)) {
	ax, ay := v.Project(a)
	bx, by := v.Project(b)
	x0, y0, x1, y1, ok := v.clip(ax, ay, bx, by)
	if !ok {
		return
	}

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clip cuts the cell segment (x0,y0)-(x1,y1) down to the part inside the
// viewport (Liang-Barsky). It reports false when nothing is left.
func (v Viewport) clip(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0, 0, 0, false
	}

	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, fx},
		{dx, float64(v.Cols-1) - fx},
		{-dy, fy},
		{dy, float64(v.Rows-1) - fy},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		if r := q / p; p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}

	at := func(from, d, t float64) int { return int(math.Round(from + d*t)) }
	return at(fx, dx, t0), at(fy, dy, t0), at(fx, dx, t1), at(fy, dy, t1), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
