package world

// ClassifyInclusion sets the status flags of every room. Main rooms are
// always included; any other room is included when a hallway segment
// crosses one of its walls.
func (d *Dungeon) ClassifyInclusion() {
	next := 0
	for i := range d.Rooms {
		room := &d.Rooms[i]
		room.Flags.Clear(FlagIncluded)

		// MainRooms is ascending, so one cursor walks it alongside i.
		if next < len(d.MainRooms) && d.MainRooms[next] == i {
			room.Flags.Set(FlagMainRoom | FlagIncluded)
			next++
			continue
		}

		b := room.Bounds()
		for _, h := range d.Hallways {
			if b.CrossedBy(h.Start, h.Middle) || b.CrossedBy(h.Middle, h.End) {
				room.Flags.Set(FlagIncluded)
				break
			}
		}
	}
}
