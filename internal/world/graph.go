package world

import (
	"cmp"
	"slices"

	"github.com/samdwyer/dungeongen/internal/errors"
)

// Edge connects two rooms by their global index.
// Both directions of a connection are stored as separate edges.
type Edge struct {
	Src      int
	Dest     int
	Distance float64
}

// CandidateEdgeSet is every connection the triangulation offers.
type CandidateEdgeSet struct {
	Edges []Edge
	// Truncated counts trailing triangle indices that did not form a whole
	// triangle and were ignored.
	Truncated int
}

// BuildGraph triangulates the main room centers and turns every triangle
// side into a pair of opposite edges weighted by center distance.
//
// Main rooms sharing a center are triangulated once and joined to the
// first room on that center by a zero-length pair. When fewer than three
// distinct centers remain, or all of them lie on one line, no triangle
// exists and the centers are chained in order along the line instead.
func BuildGraph(d *Dungeon, tri Triangulator) (CandidateEdgeSet, error) {
	set := CandidateEdgeSet{Edges: []Edge{}}

	var points []int
	first := make(map[Point]int, len(d.MainRooms))
	for _, idx := range d.MainRooms {
		c := d.Rooms[idx].Center
		if rep, ok := first[c]; ok {
			set.Edges = d.appendPair(set.Edges, rep, idx)
			continue
		}
		first[c] = idx
		points = append(points, idx)
	}

	n := len(points)
	switch {
	case n < 2:
		return set, nil
	case n == 2 || d.collinear(points):
		set.Edges = d.appendChain(set.Edges, points)
		return set, nil
	}

	coords := make([]float64, 0, 2*n)
	for _, idx := range points {
		c := d.Rooms[idx].Center
		coords = append(coords, c.X, c.Y)
	}

	indices, err := tri.Triangulate(coords)
	if err != nil {
		return CandidateEdgeSet{}, errors.Wrap(errors.ErrCodeTriangulation, err, "triangulate %d main rooms", n)
	}

	set.Truncated = len(indices) % 3
	whole := len(indices) - set.Truncated
	set.Edges = slices.Grow(set.Edges, 2*whole)

	for t := 0; t < whole; t += 3 {
		var global [3]int
		for k := range global {
			local := indices[t+k]
			if local < 0 || local >= n {
				return CandidateEdgeSet{}, errors.New(errors.ErrCodeTriangulation,
					"triangle %d references point %d of %d", t/3, local, n)
			}
			global[k] = points[local]
		}
		set.Edges = d.appendPair(set.Edges, global[0], global[1])
		set.Edges = d.appendPair(set.Edges, global[1], global[2])
		set.Edges = d.appendPair(set.Edges, global[2], global[0])
	}

	return set, nil
}

// collinear reports whether the centers of the given rooms lie on one line.
// Centers must be distinct.
func (d *Dungeon) collinear(rooms []int) bool {
	a := d.Rooms[rooms[0]].Center
	b := d.Rooms[rooms[1]].Center
	for _, idx := range rooms[2:] {
		c := d.Rooms[idx].Center
		if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) != 0 {
			return false
		}
	}
	return true
}

// appendChain joins consecutive rooms along a line of centers.
func (d *Dungeon) appendChain(edges []Edge, rooms []int) []Edge {
	line := slices.Clone(rooms)
	slices.SortFunc(line, func(i, j int) int {
		a, b := d.Rooms[i].Center, d.Rooms[j].Center
		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
	})
	for k := 1; k < len(line); k++ {
		edges = d.appendPair(edges, line[k-1], line[k])
	}
	return edges
}

// appendPair appends a->b and b->a weighted by the distance between the
// two room centers.
func (d *Dungeon) appendPair(edges []Edge, a, b int) []Edge {
	dist := d.Rooms[a].Center.Dist(d.Rooms[b].Center)
	return append(edges,
		Edge{Src: a, Dest: b, Distance: dist},
		Edge{Src: b, Dest: a, Distance: dist},
	)
}
