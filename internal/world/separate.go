package world

import (
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
)

// separationEpsilon replaces a zero center distance before normalizing.
const separationEpsilon = 1e-6

// SeparateOptions controls the separation solver.
type SeparateOptions struct {
	// MaxIterations caps the solver. Zero means DefaultMaxIterations.
	MaxIterations int
	// Workers splits each scan across goroutines; 0 or 1 is sequential.
	Workers int
	// Record keeps a snapshot of every room after each iteration in
	// Dungeon.History, starting with the unseparated layout.
	Record bool
}

// SeparationResult reports how the solver finished.
type SeparationResult struct {
	Iterations int
	Converged  bool
}

// Separate pushes overlapping rooms apart until no two rooms overlap or the
// iteration cap is reached. Every overlapping ordered pair (i, j) moves room
// i back and room j forward by the rounded unit vector between their
// centers. Displacements of one iteration are accumulated first and applied
// together, so the outcome does not depend on scan order or worker count.
//
// Hitting the cap is not an error: the rooms are left in their best-effort
// state and the result reports Converged false.
func (d *Dungeon) Separate(opts SeparateOptions) SeparationResult {
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if opts.Record {
		d.History = append(d.History[:0], slices.Clone(d.Rooms))
	}

	disp := make([]Point, len(d.Rooms))
	res := SeparationResult{}
	for res.Iterations < maxIter {
		if !d.accumulate(disp, opts.Workers) {
			res.Converged = true
			break
		}
		for i := range d.Rooms {
			d.Rooms[i].Center.X += disp[i].X
			d.Rooms[i].Center.Y += disp[i].Y
		}
		res.Iterations++
		if opts.Record {
			d.History = append(d.History, slices.Clone(d.Rooms))
		}
	}
	if !res.Converged {
		res.Converged = !AnyOverlapping(d.Rooms)
	}

	d.Iterations = res.Iterations
	d.Converged = res.Converged
	return res
}

// accumulate fills disp with this iteration's displacement of every room
// and reports whether any pair overlapped.
func (d *Dungeon) accumulate(disp []Point, workers int) bool {
	n := len(d.Rooms)
	if workers <= 1 || n < 2*workers {
		return d.accumulateRange(disp, 0, n)
	}

	chunk := (n + workers - 1) / workers
	overlapped := make([]bool, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		g.Go(func() error {
			overlapped[w] = d.accumulateRange(disp, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	return slices.Contains(overlapped, true)
}

// accumulateRange computes disp[i] for i in [lo, hi). It only reads room
// positions, so disjoint ranges can run concurrently.
func (d *Dungeon) accumulateRange(disp []Point, lo, hi int) bool {
	overlap := false
	for i := lo; i < hi; i++ {
		var acc Point
		for j := range d.Rooms {
			if i == j || !d.Rooms[i].Overlaps(d.Rooms[j]) {
				continue
			}
			overlap = true

			// (i, j) moves i backward.
			s := repulsionStep(d.Rooms[i].Center, d.Rooms[j].Center, i < j)
			acc.X -= s.X
			acc.Y -= s.Y

			// (j, i) moves i forward.
			s = repulsionStep(d.Rooms[j].Center, d.Rooms[i].Center, j < i)
			acc.X += s.X
			acc.Y += s.Y
		}
		disp[i] = acc
	}
	return overlap
}

// repulsionStep returns the unit vector from a to b rounded to whole units.
// Coincident centers get a forced diagonal step, pointing from the lower
// room index to the higher one so the two ordered pairs add up instead of
// cancelling out.
func repulsionStep(a, b Point, lowerFirst bool) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	if dist < separationEpsilon {
		dist = separationEpsilon
	}

	step := Point{X: math.Round(dx / dist), Y: math.Round(dy / dist)}
	if step.X == 0 && step.Y == 0 {
		if lowerFirst {
			return Point{X: 1, Y: 1}
		}
		return Point{X: -1, Y: -1}
	}
	return step
}
