// Package world provides graph-connected dungeon generation.
//
// A run samples rooms inside a disk, pushes them apart until no two
// overlap, connects the large "main" rooms through a triangulation reduced
// to a spanning tree plus a few loops, realizes every kept connection as an
// L-shaped or straight hallway, and finally marks the small rooms those
// hallways pass through.
package world

// Tile is the glyph a cell of a painted dungeon shows.
type Tile rune

const (
	// TileEmpty is open space outside every room and hallway.
	TileEmpty Tile = ' '
	// TileRoom is a room no hallway reaches.
	TileRoom Tile = '.'
	// TileIncluded is a non-main room a hallway passes through.
	TileIncluded Tile = ':'
	// TileMainRoom is a main room.
	TileMainRoom Tile = '#'
	// TileHallway is a hallway segment.
	TileHallway Tile = '+'
)

// TileFor returns the tile a room is painted with.
func TileFor(r Room) Tile {
	switch {
	case r.Flags.MainRoom():
		return TileMainRoom
	case r.Flags.Included():
		return TileIncluded
	default:
		return TileRoom
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
