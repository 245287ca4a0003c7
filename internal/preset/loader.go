package preset

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/samdwyer/dungeongen/internal/world"
)

// Def is one named set of generation parameters.
type Def struct {
	ID          string
	Name        string
	Description string
	Config      world.Config
	// Seeded is set when the preset fixes the seed. Otherwise callers pick
	// their own.
	Seeded bool
}

// presetsFile represents the structure of presets.toml. Config tables are
// decoded later so each can be layered over the defaults.
type presetsFile struct {
	Presets []struct {
		ID          string         `toml:"id"`
		Name        string         `toml:"name"`
		Description string         `toml:"description"`
		Config      toml.Primitive `toml:"config"`
	} `toml:"presets"`
}

// Load reads the presets from an embedded TOML file.
func Load(filename string) ([]Def, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	var file presetsFile
	md, err := toml.Decode(string(content), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML from %s: %w", filename, err)
	}

	defs := make([]Def, 0, len(file.Presets))
	for _, p := range file.Presets {
		cfg := world.DefaultConfig()
		if err := md.PrimitiveDecode(p.Config, &cfg); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.ID, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.ID, err)
		}
		var seed struct {
			Seed *int64 `toml:"seed"`
		}
		if err := md.PrimitiveDecode(p.Config, &seed); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.ID, err)
		}
		defs = append(defs, Def{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Config:      cfg,
			Seeded:      seed.Seed != nil,
		})
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", filename, undecoded)
	}
	return defs, nil
}
