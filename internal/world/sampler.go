package world

import (
	"math"
	"math/rand"

	"github.com/samdwyer/dungeongen/internal/errors"
)

// Sample creates the unplaced room set of a run: RoomCount rooms with
// centers spread uniformly over a disk of the configured radius and sizes
// drawn from the per-axis normal distributions. Positions and sizes are
// rounded to whole units. Hallways are left empty.
func Sample(cfg Config, rng *rand.Rand) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Dungeon{
		Rooms:     make([]Room, cfg.RoomCount),
		MainRooms: make([]int, 0),
	}

	mainWidth := cfg.MainRoomThreshold * cfg.Width.Mean
	mainHeight := cfg.MainRoomThreshold * cfg.Height.Mean

	for i := range d.Rooms {
		p := randomPointInCircle(rng, cfg.Radius)
		w, err := sampleSize(rng, cfg.Width)
		if err != nil {
			return nil, err
		}
		h, err := sampleSize(rng, cfg.Height)
		if err != nil {
			return nil, err
		}
		room := Room{
			Center: Point{X: math.Round(p.X), Y: math.Round(p.Y)},
			Width:  w,
			Height: h,
		}
		if room.Width > mainWidth && room.Height > mainHeight {
			room.Flags.Set(FlagMainRoom)
			// Ascending by construction; ClassifyInclusion relies on it.
			d.MainRooms = append(d.MainRooms, i)
		}
		d.Rooms[i] = room
	}

	return d, nil
}

// randomPointInCircle returns a point uniformly distributed over the disk.
// The sum of two uniform draws folded back at 1 has a density proportional
// to the radius, which is what an area-uniform disk needs.
func randomPointInCircle(rng *rand.Rand, radius float64) Point {
	t := 2 * math.Pi * rng.Float64()
	u := rng.Float64() + rng.Float64()
	r := u
	if u > 1 {
		r = 2 - u
	}
	return Point{
		X: radius * r * math.Cos(t),
		Y: radius * r * math.Sin(t),
	}
}

// maxSizeDraws bounds the rejection loop of sampleSize.
const maxSizeDraws = 100000

// sampleSize draws from the distribution until the rounded value clears
// the minimum, giving up after maxSizeDraws rejections.
func sampleSize(rng *rand.Rand, dist SizeDistribution) (float64, error) {
	for range maxSizeDraws {
		v := dist.Mean + rng.NormFloat64()*dist.StdDev
		if v <= dist.Min {
			continue
		}
		if size := math.Round(v); size >= dist.Min {
			return size, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig,
		"no size above minimum %v after %d draws (mean %v, stddev %v)", dist.Min, maxSizeDraws, dist.Mean, dist.StdDev)
}
