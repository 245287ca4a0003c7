package world

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/samdwyer/dungeongen/internal/errors"
)

func TestSampleRooms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomCount = 500
	cfg.Radius = 40

	d, err := Sample(cfg, rand.New(rand.NewSource(100)))
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(d.Rooms) != cfg.RoomCount {
		t.Fatalf("Expected %d rooms, got %d", cfg.RoomCount, len(d.Rooms))
	}
	if len(d.Hallways) != 0 {
		t.Errorf("Sample should not build hallways, got %d", len(d.Hallways))
	}

	next := 0
	for i, r := range d.Rooms {
		if r.Width < cfg.Width.Min || r.Height < cfg.Height.Min {
			t.Errorf("Room %d size %vx%v below minimum", i, r.Width, r.Height)
		}
		if r.Width != math.Round(r.Width) || r.Height != math.Round(r.Height) {
			t.Errorf("Room %d size %vx%v not whole units", i, r.Width, r.Height)
		}
		if r.Center.X != math.Round(r.Center.X) || r.Center.Y != math.Round(r.Center.Y) {
			t.Errorf("Room %d center %v not on the grid", i, r.Center)
		}
		// Rounding can push a center just past the rim.
		if dist := r.Center.Dist(Point{}); dist > cfg.Radius+1 {
			t.Errorf("Room %d center %v is %.2f from origin, radius %v", i, r.Center, dist, cfg.Radius)
		}

		isMain := r.Width > 1.25*cfg.Width.Mean && r.Height > 1.25*cfg.Height.Mean
		if isMain != r.Flags.MainRoom() {
			t.Errorf("Room %d (%vx%v) main flag = %v, want %v", i, r.Width, r.Height, r.Flags.MainRoom(), isMain)
		}
		if isMain {
			if next >= len(d.MainRooms) || d.MainRooms[next] != i {
				t.Fatalf("Main room %d missing from ordered index list %v", i, d.MainRooms)
			}
			next++
		}
	}
	if next != len(d.MainRooms) {
		t.Errorf("Main room list has %d entries, found %d main rooms", len(d.MainRooms), next)
	}
}

func TestRandomPointInCircleStaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inner := 0
	const n = 20000
	for i := 0; i < n; i++ {
		p := randomPointInCircle(rng, 10)
		d := p.Dist(Point{})
		if d > 10+1e-9 {
			t.Fatalf("Point %v outside radius 10", p)
		}
		if d < 5 {
			inner++
		}
	}
	// The inner half-radius disk holds a quarter of the area.
	if frac := float64(inner) / n; frac < 0.22 || frac > 0.28 {
		t.Errorf("Inner disk fraction %.3f, expected about 0.25 for uniform density", frac)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rooms", func(c *Config) { c.RoomCount = 0 }},
		{"negative rooms", func(c *Config) { c.RoomCount = -3 }},
		{"zero radius", func(c *Config) { c.Radius = 0 }},
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"probability above one", func(c *Config) { c.ExtraEdgeProbability = 1.5 }},
		{"negative probability", func(c *Config) { c.ExtraEdgeProbability = -0.1 }},
		{"zero iteration cap", func(c *Config) { c.MaxIterations = 0 }},
		{"zero width minimum", func(c *Config) { c.Width.Min = 0 }},
		{"negative height stddev", func(c *Config) { c.Height.StdDev = -1 }},
		{"degenerate width", func(c *Config) { c.Width = SizeDistribution{Mean: 2, StdDev: 0, Min: 3} }},
		{"width minimum far above mean", func(c *Config) { c.Width = SizeDistribution{Mean: 0, StdDev: 0.1, Min: 3} }},
		{"height minimum beyond three stddevs", func(c *Config) { c.Height = SizeDistribution{Mean: 5, StdDev: 1, Min: 8} }},
		{"zero threshold", func(c *Config) { c.MainRoomThreshold = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config rejected: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Expected INVALID_CONFIG, got %v", err)
			}
			if _, err := Sample(cfg, rand.New(rand.NewSource(1))); err == nil {
				t.Error("Sample should reject the config before sampling")
			}
		})
	}
}

func TestSampleSizeGivesUp(t *testing.T) {
	// Bypasses Validate to reach the draw budget directly.
	dist := SizeDistribution{Mean: 0, StdDev: 0.1, Min: 3}

	done := make(chan error, 1)
	go func() {
		_, err := sampleSize(rand.New(rand.NewSource(1)), dist)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("Expected INVALID_CONFIG, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("sampleSize did not return for an unreachable minimum")
	}
}

func TestSampleSizeNarrowDistribution(t *testing.T) {
	dist := SizeDistribution{Mean: 4, StdDev: 0.5, Min: 3}
	if err := dist.validate("width"); err != nil {
		t.Fatalf("Narrow but reachable distribution rejected: %v", err)
	}

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		size, err := sampleSize(rng, dist)
		if err != nil {
			t.Fatalf("sampleSize failed: %v", err)
		}
		if size < dist.Min {
			t.Fatalf("Size %v below minimum %v", size, dist.Min)
		}
	}
}
