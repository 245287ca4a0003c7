package world

import (
	"github.com/fogleman/delaunay"
)

// Triangulator triangulates a planar point set.
//
// coords holds the points interleaved as x0, y0, x1, y1, ... The result is
// a flat list of point indices where every consecutive triple is one
// triangle.
type Triangulator interface {
	Triangulate(coords []float64) ([]int, error)
}

// TriangulatorFunc adapts a function to the Triangulator interface.
type TriangulatorFunc func(coords []float64) ([]int, error)

// Triangulate calls f(coords).
func (f TriangulatorFunc) Triangulate(coords []float64) ([]int, error) {
	return f(coords)
}

// DelaunayTriangulator computes a Delaunay triangulation.
type DelaunayTriangulator struct{}

// Triangulate implements Triangulator. It fails for fewer than three
// points or when all points are collinear.
func (DelaunayTriangulator) Triangulate(coords []float64) ([]int, error) {
	points := make([]delaunay.Point, len(coords)/2)
	for i := range points {
		points[i] = delaunay.Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	t, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, err
	}
	return t.Triangles, nil
}

var _ Triangulator = DelaunayTriangulator{}
