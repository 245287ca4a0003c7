package world

import (
	"math/rand"
	"testing"
)

// completeGraph returns both directions of every pair among the points,
// using the point index as room index.
func completeGraph(points []Point) []Edge {
	var edges []Edge
	for i := range points {
		for j := range points {
			if i != j {
				edges = append(edges, Edge{Src: i, Dest: j, Distance: points[i].Dist(points[j])})
			}
		}
	}
	return edges
}

var fivePoints = []Point{{0, 0}, {10, 0}, {20, 5}, {5, 15}, {30, 30}}

// components counts the groups the edges join the n rooms into.
func components(n int, edges []Edge) int {
	uf := newUnionFind()
	groups := n
	for _, e := range edges {
		if uf.find(e.Src) != uf.find(e.Dest) {
			uf.union(e.Src, e.Dest)
			groups--
		}
	}
	return groups
}

func TestSpanningTreeWithoutExtras(t *testing.T) {
	candidates := completeGraph(fivePoints)
	res := BuildSpanningGraph(candidates, 5, 0, rand.New(rand.NewSource(1)))

	if len(res.Tree) != 4 {
		t.Fatalf("Expected 4 tree edges, got %d", len(res.Tree))
	}
	if len(res.Retained) != 4 {
		t.Errorf("Expected no extra edges with probability 0, got %d retained", len(res.Retained))
	}
	if components(5, res.Retained) != 1 {
		t.Error("Tree does not connect all rooms")
	}
	// n-1 edges connecting n nodes cannot contain a cycle.
	if len(res.Candidates) != len(candidates) {
		t.Error("Full candidate list not preserved")
	}

	// Minimum total weight for these points.
	total := 0.0
	for _, e := range res.Tree {
		total += e.Distance
	}
	want := fivePoints[0].Dist(fivePoints[1]) + fivePoints[1].Dist(fivePoints[2]) +
		fivePoints[1].Dist(fivePoints[3]) + fivePoints[2].Dist(fivePoints[4])
	if total-want > 1e-9 || want-total > 1e-9 {
		t.Errorf("Tree weight %v, want %v", total, want)
	}
}

func TestSpanningAllExtras(t *testing.T) {
	candidates := completeGraph(fivePoints)
	res := BuildSpanningGraph(candidates, 5, 1, rand.New(rand.NewSource(1)))

	// 5 rooms have 10 undirected pairs.
	if len(res.Retained) != 10 {
		t.Errorf("Expected every deduplicated pair retained, got %d", len(res.Retained))
	}
	if len(res.Tree) != 4 {
		t.Errorf("Expected 4 tree edges, got %d", len(res.Tree))
	}

	seen := make(map[pair]bool)
	for _, e := range res.Retained {
		if seen[pairOf(e)] {
			t.Errorf("Pair %d-%d retained twice", e.Src, e.Dest)
		}
		seen[pairOf(e)] = true
	}
}

func TestSpanningOutOfRangeProbability(t *testing.T) {
	candidates := completeGraph(fivePoints)
	for _, p := range []float64{-0.5, 1.5} {
		res := BuildSpanningGraph(candidates, 5, p, rand.New(rand.NewSource(1)))
		if len(res.Retained) != 4 {
			t.Errorf("Probability %v: expected it treated as 0, got %d retained", p, len(res.Retained))
		}
	}
	res := BuildSpanningGraph(candidates, 5, 1, nil)
	if len(res.Retained) != 4 {
		t.Errorf("Nil rng: expected no extras, got %d retained", len(res.Retained))
	}
}

func TestSpanningDeterministic(t *testing.T) {
	candidates := completeGraph(fivePoints)
	a := BuildSpanningGraph(candidates, 5, 0.5, rand.New(rand.NewSource(42)))
	b := BuildSpanningGraph(candidates, 5, 0.5, rand.New(rand.NewSource(42)))

	if len(a.Retained) != len(b.Retained) {
		t.Fatalf("Retained counts differ: %d != %d", len(a.Retained), len(b.Retained))
	}
	for i := range a.Retained {
		if a.Retained[i] != b.Retained[i] {
			t.Errorf("Retained edge %d differs: %+v != %+v", i, a.Retained[i], b.Retained[i])
		}
	}
}

func TestSpanningStableTies(t *testing.T) {
	// A unit square: all four sides tie.
	square := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	candidates := []Edge{
		{Src: 0, Dest: 1, Distance: 1},
		{Src: 1, Dest: 2, Distance: 1},
		{Src: 2, Dest: 3, Distance: 1},
		{Src: 3, Dest: 0, Distance: 1},
		{Src: 0, Dest: 2, Distance: square[0].Dist(square[2])},
	}

	res := BuildSpanningGraph(candidates, 4, 0, nil)
	want := candidates[:3]
	if len(res.Tree) != 3 {
		t.Fatalf("Expected 3 tree edges, got %d", len(res.Tree))
	}
	for i := range want {
		if res.Tree[i] != want[i] {
			t.Errorf("Tree edge %d = %+v, want %+v (input order)", i, res.Tree[i], want[i])
		}
	}
}

func TestUnionFindGlobalIndices(t *testing.T) {
	uf := newUnionFind()
	uf.union(100, 7)
	uf.union(7, 42)
	if uf.find(42) != uf.find(100) {
		t.Error("42 and 100 should share a root")
	}
	if uf.find(3) == uf.find(100) {
		t.Error("3 was never joined")
	}
}
