package world

import "math"

// Hallway is a two-segment corridor: Start to Middle, then Middle to End.
// Both segments are axis-aligned; one of them may have zero length.
type Hallway struct {
	Start  Point
	Middle Point
	End    Point
}

// BuildHallways realizes every retained edge as a hallway between the two
// room centers.
//
// When the midpoint's x lies inside both rooms' horizontal extents the
// hallway is a straight vertical run at that x; likewise a straight
// horizontal run when the midpoint's y lies inside both vertical extents.
// Otherwise it is an L leaving the source vertically.
//
// Hallways are not deduplicated here; a pair retained in both directions
// would yield two overlapping hallways.
func BuildHallways(d *Dungeon, res SpanningResult) []Hallway {
	hallways := make([]Hallway, 0, len(res.Retained))
	for _, e := range res.Retained {
		hallways = append(hallways, hallwayBetween(d.Rooms[e.Src], d.Rooms[e.Dest]))
	}
	return hallways
}

func hallwayBetween(src, dest Room) Hallway {
	sb, db := src.Bounds(), dest.Bounds()
	mid := Point{
		X: (src.Center.X + dest.Center.X) / 2,
		Y: math.Round((src.Center.Y + dest.Center.Y) / 2),
	}

	switch {
	case sb.insideX(mid.X) && db.insideX(mid.X):
		return Hallway{
			Start:  Point{X: mid.X, Y: src.Center.Y},
			Middle: Point{X: mid.X, Y: dest.Center.Y},
			End:    Point{X: mid.X, Y: dest.Center.Y},
		}
	case sb.insideY(mid.Y) && db.insideY(mid.Y):
		return Hallway{
			Start:  Point{X: src.Center.X, Y: mid.Y},
			Middle: Point{X: dest.Center.X, Y: mid.Y},
			End:    Point{X: dest.Center.X, Y: mid.Y},
		}
	default:
		return Hallway{
			Start:  src.Center,
			Middle: Point{X: src.Center.X, Y: dest.Center.Y},
			End:    dest.Center,
		}
	}
}
