// Package viewer provides the interactive terminal viewer for a generated
// dungeon.
package viewer

import "github.com/samdwyer/dungeongen/internal/world"

// RoomView selects which rooms are drawn.
type RoomView int

const (
	// RoomsAll draws every sampled room.
	RoomsAll RoomView = iota
	// RoomsMain draws only main rooms.
	RoomsMain
	// RoomsIncluded draws main rooms and rooms crossed by a hallway.
	RoomsIncluded
)

// String returns a human-readable view name.
func (v RoomView) String() string {
	switch v {
	case RoomsAll:
		return "all"
	case RoomsMain:
		return "main"
	case RoomsIncluded:
		return "included"
	default:
		return "unknown"
	}
}

// Next returns the following view, wrapping around.
func (v RoomView) Next() RoomView {
	return (v + 1) % 3
}

// Filter returns the room predicate for the view.
func (v RoomView) Filter() func(world.Room) bool {
	switch v {
	case RoomsMain:
		return func(r world.Room) bool { return r.Flags.MainRoom() }
	case RoomsIncluded:
		return func(r world.Room) bool { return r.Flags.Included() }
	default:
		return nil
	}
}

// Overlay selects which connection graph is drawn over the rooms.
type Overlay int

const (
	OverlayNone Overlay = iota
	// OverlaySpanning draws the retained edges.
	OverlaySpanning
	// OverlayCandidate draws every candidate edge.
	OverlayCandidate
)

// String returns a human-readable overlay name.
func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlaySpanning:
		return "spanning"
	case OverlayCandidate:
		return "candidate"
	default:
		return "unknown"
	}
}

// Next returns the following overlay, wrapping around.
func (o Overlay) Next() Overlay {
	return (o + 1) % 3
}

// Edges returns the edges of d the overlay shows.
func (o Overlay) Edges(d *world.Dungeon) []world.Edge {
	switch o {
	case OverlaySpanning:
		return d.Graph.Retained
	case OverlayCandidate:
		return d.Graph.Candidates
	default:
		return nil
	}
}
