package export

import (
	"encoding/json"
	"io"

	"github.com/samdwyer/dungeongen/internal/world"
)

type jsonOutput struct {
	Rooms      []jsonRoom    `json:"rooms"`
	MainRooms  []int         `json:"main_rooms"`
	Hallways   []jsonHallway `json:"hallways"`
	Candidates []jsonEdge    `json:"candidate_edges"`
	Retained   []jsonEdge    `json:"retained_edges"`
	Iterations int           `json:"iterations"`
	Converged  bool          `json:"converged"`
	Truncated  int           `json:"truncated_indices,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonRoom struct {
	Center   jsonPoint `json:"center"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	MainRoom bool      `json:"main_room,omitempty"`
	Included bool      `json:"included,omitempty"`
}

type jsonHallway struct {
	Start  jsonPoint `json:"start"`
	Middle jsonPoint `json:"middle"`
	End    jsonPoint `json:"end"`
}

type jsonEdge struct {
	Src      int     `json:"src"`
	Dest     int     `json:"dest"`
	Distance float64 `json:"distance"`
	Tree     bool    `json:"tree,omitempty"`
}

// WriteJSON writes the dungeon as indented JSON.
func WriteJSON(w io.Writer, d *world.Dungeon) error {
	out := jsonOutput{
		Rooms:      make([]jsonRoom, len(d.Rooms)),
		MainRooms:  d.MainRooms,
		Hallways:   make([]jsonHallway, len(d.Hallways)),
		Candidates: toJSONEdges(d.Graph.Candidates, nil),
		Retained:   toJSONEdges(d.Graph.Retained, d.Graph.Tree),
		Iterations: d.Iterations,
		Converged:  d.Converged,
		Truncated:  d.TruncatedIndices,
	}
	if out.MainRooms == nil {
		out.MainRooms = []int{}
	}
	for i, r := range d.Rooms {
		out.Rooms[i] = jsonRoom{
			Center:   toJSONPoint(r.Center),
			Width:    r.Width,
			Height:   r.Height,
			MainRoom: r.Flags.MainRoom(),
			Included: r.Flags.Included(),
		}
	}
	for i, h := range d.Hallways {
		out.Hallways[i] = jsonHallway{
			Start:  toJSONPoint(h.Start),
			Middle: toJSONPoint(h.Middle),
			End:    toJSONPoint(h.End),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONPoint(p world.Point) jsonPoint {
	return jsonPoint{X: p.X, Y: p.Y}
}

// toJSONEdges converts edges, flagging those that also appear in tree.
func toJSONEdges(edges, tree []world.Edge) []jsonEdge {
	inTree := make(map[world.Edge]bool, len(tree))
	for _, e := range tree {
		inTree[e] = true
	}
	out := make([]jsonEdge, len(edges))
	for i, e := range edges {
		out[i] = jsonEdge{Src: e.Src, Dest: e.Dest, Distance: e.Distance, Tree: inTree[e]}
	}
	return out
}
