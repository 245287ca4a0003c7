package world

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/errors"
)

const (
	// DefaultRoomCount is the number of rooms sampled when none is configured.
	DefaultRoomCount = 150
	// DefaultRadius is the radius of the sampling disk in dungeon units.
	DefaultRadius = 50

	// DefaultMainRoomThreshold is the multiple of the mean size a room must
	// exceed on both axes to become a main room.
	DefaultMainRoomThreshold = 1.25
	// DefaultExtraEdgeProbability is the chance a cycle edge is kept.
	DefaultExtraEdgeProbability = 0.15
	// DefaultMaxIterations caps the separation solver.
	DefaultMaxIterations = 20000
)

// sizeSigmas is how far above the mean, in standard deviations, a size
// minimum may lie. Beyond it almost every draw would be rejected.
const sizeSigmas = 3


// SizeDistribution describes the normal distribution one room axis is drawn
// from. Draws at or below Min are rejected.
type SizeDistribution struct {
	Mean   float64 `toml:"mean"`
	StdDev float64 `toml:"stddev"`
	Min    float64 `toml:"min"`
}

// Config holds every parameter of a generation run.
type Config struct {
	RoomCount int     `toml:"rooms"`
	Radius    float64 `toml:"radius"`

	Width  SizeDistribution `toml:"width"`
	Height SizeDistribution `toml:"height"`

	MainRoomThreshold    float64 `toml:"main_room_threshold"`
	ExtraEdgeProbability float64 `toml:"extra_edge_probability"`
	MaxIterations        int     `toml:"max_iterations"`

	// Workers splits the separation scan across goroutines. Zero or one
	// runs it sequentially; the result is identical either way.
	Workers int `toml:"workers"`

	// Seed for the run's random generator. The same seed and parameters
	// always produce the same dungeon.
	Seed int64 `toml:"seed"`
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	size := SizeDistribution{Mean: 10, StdDev: 10, Min: 3}
	return Config{
		RoomCount:            DefaultRoomCount,
		Radius:               DefaultRadius,
		Width:                size,
		Height:               size,
		MainRoomThreshold:    DefaultMainRoomThreshold,
		ExtraEdgeProbability: DefaultExtraEdgeProbability,
		MaxIterations:        DefaultMaxIterations,
	}
}

// Validate rejects parameters no run can be started with.
func (c Config) Validate() error {
	if c.RoomCount <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "room count must be positive, got %d", c.RoomCount)
	}
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "radius must be positive and finite, got %v", c.Radius)
	}
	if err := c.Width.validate("width"); err != nil {
		return err
	}
	if err := c.Height.validate("height"); err != nil {
		return err
	}
	if !(c.MainRoomThreshold > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "main room threshold must be positive, got %v", c.MainRoomThreshold)
	}
	if !(c.ExtraEdgeProbability >= 0 && c.ExtraEdgeProbability <= 1) {
		return errors.New(errors.ErrCodeInvalidConfig, "extra edge probability must be in [0,1], got %v", c.ExtraEdgeProbability)
	}
	if c.MaxIterations <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "iteration cap must be positive, got %d", c.MaxIterations)
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func (s SizeDistribution) validate(axis string) error {
	if !(s.Min > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "%s minimum must be positive, got %v", axis, s.Min)
	}
	if !(s.StdDev >= 0) || math.IsInf(s.StdDev, 0) || math.IsNaN(s.Mean) || math.IsInf(s.Mean, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "%s distribution must be finite with non-negative stddev", axis)
	}
	// A degenerate distribution at or below the minimum would never be accepted.
	if s.StdDev == 0 && (s.Mean <= s.Min || math.Round(s.Mean) < s.Min) {
		return errors.New(errors.ErrCodeInvalidConfig, "%s mean %v never exceeds minimum %v with zero stddev", axis, s.Mean, s.Min)
	}
	// Rounding can push a draw up to half a unit below the minimum.
	if s.StdDev > 0 && s.Mean+sizeSigmas*s.StdDev <= s.Min+0.5 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"%s minimum %v lies more than %d stddevs above mean %v", axis, s.Min, sizeSigmas, s.Mean)
	}
	return nil
}
