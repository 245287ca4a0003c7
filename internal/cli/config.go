package cli

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/errors"
	"github.com/samdwyer/dungeongen/internal/preset"
	"github.com/samdwyer/dungeongen/internal/world"
)

// genOpts holds the generation flags shared by generate and view.
type genOpts struct {
	preset    string  // named parameter set the file and flags layer over
	config    string  // TOML file with generation parameters
	rooms     int     // number of rooms to sample
	radius    float64 // sampling disk radius
	seed      int64   // random seed
	extra     float64 // probability of keeping a cycle edge
	maxIters  int     // separation iteration cap
	workers   int     // separation goroutines
	threshold float64 // main room size multiple
}

// addGenFlags registers the generation flags on cmd.
func addGenFlags(cmd *cobra.Command, opts *genOpts) {
	defaults := world.DefaultConfig()

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "start from a named preset (see 'dungeongen presets')")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file with generation parameters")
	cmd.Flags().IntVar(&opts.rooms, "rooms", defaults.RoomCount, "number of rooms to sample")
	cmd.Flags().Float64Var(&opts.radius, "radius", defaults.Radius, "radius of the sampling disk")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: time-based)")
	cmd.Flags().Float64Var(&opts.extra, "extra-edges", defaults.ExtraEdgeProbability, "probability of keeping each loop-forming edge")
	cmd.Flags().IntVar(&opts.maxIters, "max-iters", defaults.MaxIterations, "separation iteration cap")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "goroutines for the separation scan (0: sequential)")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", defaults.MainRoomThreshold, "size multiple of the mean a main room must exceed")
}

// buildConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order. The seed is time-based unless the preset, the
// file or a flag sets it.
func buildConfig(cmd *cobra.Command, opts *genOpts) (world.Config, error) {
	cfg := world.DefaultConfig()
	seeded := false

	if opts.preset != "" {
		registry, err := preset.LoadRegistry()
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInternal, err, "load presets")
		}
		def := registry.GetByID(opts.preset)
		if def == nil {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown preset %q", opts.preset)
		}
		cfg = def.Config
		seeded = def.Seeded
	}

	if opts.config != "" {
		md, err := toml.DecodeFile(opts.config, &cfg)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", opts.config)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %v", opts.config, undecoded)
		}
		seeded = seeded || md.IsDefined("seed")
	}

	flags := cmd.Flags()
	if flags.Changed("rooms") {
		cfg.RoomCount = opts.rooms
	}
	if flags.Changed("radius") {
		cfg.Radius = opts.radius
	}
	if flags.Changed("extra-edges") {
		cfg.ExtraEdgeProbability = opts.extra
	}
	if flags.Changed("max-iters") {
		cfg.MaxIterations = opts.maxIters
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("threshold") {
		cfg.MainRoomThreshold = opts.threshold
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
		seeded = true
	}
	if !seeded {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, cfg.Validate()
}
