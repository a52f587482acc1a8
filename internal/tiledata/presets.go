package tiledata

import (
	"errors"
	"fmt"
	"sort"
)

// PresetDef is a named grid size and round budget loaded from JSON.
type PresetDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "reference")
	Description string `json:"description"` // Shown in --help
	Width       int    `json:"width"`       // Grid columns
	Height      int    `json:"height"`      // Grid rows
	Rounds      int    `json:"rounds"`      // Collapse rounds to run
}

// Validate reports presets that could not drive a run.
func (p PresetDef) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("preset %q: invalid size %dx%d", p.ID, p.Width, p.Height)
	}
	if p.Rounds < 0 {
		return fmt.Errorf("preset %q: negative rounds %d", p.ID, p.Rounds)
	}
	return nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Default string      `json:"default"`
	Presets []PresetDef `json:"presets"`
}

// PresetRegistry holds loaded presets keyed by ID.
type PresetRegistry struct {
	presets   map[string]*PresetDef
	all       []PresetDef
	defaultID string
}

// NewPresetRegistry creates a registry from loaded presets.
func NewPresetRegistry(file PresetsFile) (*PresetRegistry, error) {
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}

	registry := &PresetRegistry{
		presets:   make(map[string]*PresetDef),
		all:       file.Presets,
		defaultID: file.Default,
	}
	for i := range file.Presets {
		if err := file.Presets[i].Validate(); err != nil {
			return nil, err
		}
		registry.presets[file.Presets[i].ID] = &file.Presets[i]
	}
	if registry.presets[file.Default] == nil {
		return nil, fmt.Errorf("default preset %q not defined", file.Default)
	}
	return registry, nil
}

// LoadPresetRegistry loads the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return NewPresetRegistry(file)
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Default returns the preset used when none is requested.
func (r *PresetRegistry) Default() *PresetDef {
	return r.presets[r.defaultID]
}

// IDs returns all preset IDs in sorted order.
func (r *PresetRegistry) IDs() []string {
	ids := make([]string, 0, len(r.presets))
	for id := range r.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the presets in file order.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}
