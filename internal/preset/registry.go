package preset

import "errors"

// Registry holds loaded presets and provides lookup utilities.
type Registry struct {
	byID map[string]*Def
	all  []Def
}

// NewRegistry creates a registry from loaded presets.
func NewRegistry(defs []Def) *Registry {
	registry := &Registry{
		byID: make(map[string]*Def, len(defs)),
		all:  defs,
	}
	for i := range defs {
		registry.byID[defs[i].ID] = &defs[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.toml.
func LoadRegistry() (*Registry, error) {
	defs, err := Load("presets.toml")
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no presets loaded from presets.toml")
	}
	return NewRegistry(defs), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	return r.byID[id]
}

// All returns all presets in file order.
func (r *Registry) All() []Def {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
