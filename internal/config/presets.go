package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const presetExt = ".yaml"

var ErrPresetNotFound = errors.New("preset not found")

// PresetStore reads named scenario files (e.g. examples/scenarios/baseline.yaml).
type PresetStore struct {
	Dir string
}

// Preset is one scenario file in the store.
type Preset struct {
	ID       string
	File     string
	Scenario ScenarioConfig
}

// DefaultPresetDir resolves PRESET_DIR, falling back to ./examples/scenarios.
func DefaultPresetDir() string {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

func NewPresetStore(dir string) *PresetStore {
	return &PresetStore{Dir: dir}
}

// List returns every parseable preset sorted by ID. A missing directory
// is an empty store, not an error.
func (s *PresetStore) List() ([]Preset, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Preset{}, nil
		}
		return nil, err
	}

	out := []Preset{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), presetExt) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), presetExt)
		p, err := s.Load(id)
		if err != nil {
			log.Printf("PresetStore: skipping %s: %v", e.Name(), err)
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Load reads the preset with the given ID (file name without extension).
// The conversion rate is defaulted the same way Load does for configs.
func (s *PresetStore) Load(id string) (Preset, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return Preset{}, fmt.Errorf("invalid preset id %q", id)
	}
	path := filepath.Join(s.Dir, id+presetExt)
	sc, err := LoadScenarioFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, id)
		}
		return Preset{}, err
	}
	if sc.Name == "" {
		sc.Name = id
	}
	if sc.ConversionRate == 0 {
		sc.ConversionRate = DefaultScenario().ConversionRate
	}
	return Preset{ID: id, File: path, Scenario: sc}, nil
}
