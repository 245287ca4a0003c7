package world

import "math"

// Point is a position in dungeon units.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Flags is the status bitset carried by every room.
type Flags uint8

const (
	// FlagIncluded marks a room as part of the playable dungeon.
	FlagIncluded Flags = 1 << iota
	// FlagMainRoom marks a room large enough to be a graph node.
	FlagMainRoom
)

// Included reports whether FlagIncluded is set.
func (f Flags) Included() bool { return f&FlagIncluded != 0 }

// MainRoom reports whether FlagMainRoom is set.
func (f Flags) MainRoom() bool { return f&FlagMainRoom != 0 }

// Set turns on the given flags.
func (f *Flags) Set(flags Flags) { *f |= flags }

// Clear turns off the given flags.
func (f *Flags) Clear(flags Flags) { *f &^= flags }

// Room represents an axis-aligned rectangular room given by its center.
type Room struct {
	Center Point
	Width  float64
	Height float64
	Flags  Flags
}

// Bounds is the extent of a room. Top is the smaller y value.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

// Bounds returns the room's extent.
func (r Room) Bounds() Bounds {
	hw, hh := r.Width/2, r.Height/2
	return Bounds{
		Left:   r.Center.X - hw,
		Right:  r.Center.X + hw,
		Top:    r.Center.Y - hh,
		Bottom: r.Center.Y + hh,
	}
}

// Overlaps returns true if the two rooms' boxes share interior area.
// Rooms that only touch along an edge do not overlap.
func (r Room) Overlaps(other Room) bool {
	a, b := r.Bounds(), other.Bounds()
	return a.Left < b.Right && b.Left < a.Right &&
		a.Top < b.Bottom && b.Top < a.Bottom
}

// AnyOverlapping reports whether any pair of rooms overlaps.
func AnyOverlapping(rooms []Room) bool {
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Overlaps(rooms[j]) {
				return true
			}
		}
	}
	return false
}

// insideX reports whether x lies strictly between the left and right walls.
func (b Bounds) insideX(x float64) bool {
	return b.Left < x && x < b.Right
}

// insideY reports whether y lies strictly between the top and bottom walls.
func (b Bounds) insideY(y float64) bool {
	return b.Top < y && y < b.Bottom
}

// CrossedBy reports whether the axis-aligned segment from a to b passes
// through one of the box's walls. The segment's fixed coordinate must lie
// strictly inside the box and at least one perpendicular wall must lie
// strictly between its endpoints. Diagonal and zero-length segments never
// cross.
func (b Bounds) CrossedBy(a, c Point) bool {
	switch {
	case a.X == c.X && a.Y != c.Y:
		return b.insideX(a.X) && (between(b.Top, a.Y, c.Y) || between(b.Bottom, a.Y, c.Y))
	case a.Y == c.Y && a.X != c.X:
		return b.insideY(a.Y) && (between(b.Left, a.X, c.X) || between(b.Right, a.X, c.X))
	default:
		return false
	}
}

// between reports whether v lies strictly between p and q in either order.
func between(v, p, q float64) bool {
	if p > q {
		p, q = q, p
	}
	return p < v && v < q
}
