package world

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// SpanningResult is the reduced connection graph of a run.
type SpanningResult struct {
	// Retained holds the tree edges and the kept cycle edges in the order
	// they were accepted.
	Retained []Edge
	// Tree holds only the minimum spanning tree edges.
	Tree []Edge
	// Candidates is the full candidate edge list the result was built from.
	Candidates []Edge
}

// pair identifies an undirected connection.
type pair struct {
	lo, hi int
}

func pairOf(e Edge) pair {
	if e.Src > e.Dest {
		return pair{lo: e.Dest, hi: e.Src}
	}
	return pair{lo: e.Src, hi: e.Dest}
}

// BuildSpanningGraph reduces the candidate edges to a minimum spanning tree
// (Kruskal over ascending distance) plus cycle edges each kept with
// probability extra. An undirected pair is retained at most once even
// though both directions are candidates.
//
// Once the tree has mainRoomCount-1 edges the scan stops if extra is 0;
// otherwise the remaining candidates, which can only close cycles, still
// get their coin flip. extra outside [0,1] is treated as 0, as is a nil rng.
func BuildSpanningGraph(candidates []Edge, mainRoomCount int, extra float64, rng *rand.Rand) SpanningResult {
	if !(extra >= 0 && extra <= 1) || rng == nil {
		extra = 0
	}

	res := SpanningResult{
		Retained:   make([]Edge, 0, max(mainRoomCount-1, 0)),
		Tree:       make([]Edge, 0, max(mainRoomCount-1, 0)),
		Candidates: candidates,
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Edge) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	uf := newUnionFind()
	used := mapset.New[pair]()

	for _, e := range sorted {
		if len(res.Tree) >= mainRoomCount-1 && extra == 0 {
			break
		}
		key := pairOf(e)
		if used.Has(key) {
			continue
		}

		if uf.find(e.Src) == uf.find(e.Dest) {
			if extra > 0 && rng.Float64() < extra {
				res.Retained = append(res.Retained, e)
				used.Put(key)
			}
			continue
		}

		uf.union(e.Src, e.Dest)
		used.Put(key)
		res.Retained = append(res.Retained, e)
		res.Tree = append(res.Tree, e)
	}

	return res
}

// unionFind groups room indices. Rooms are added lazily on first lookup.
type unionFind struct {
	parent map[int]int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[int]int)}
}

// find returns the root of x's group, compressing the path behind it.
func (u *unionFind) find(x int) int {
	root := x
	for {
		p, ok := u.parent[root]
		if !ok || p == root {
			break
		}
		root = p
	}
	for x != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}
	return root
}

// union attaches b's root under a's root.
func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}
