// Package config loads the scenario configuration: an outer YAML layer
// telling the engine where the unit-commitment CSV inputs live and how
// to drive the rolling-horizon loop. It never replaces the CSV files
// spec.md 6 names -- settings.csv, unit_data.csv, etc remain the
// MILP-specific source of truth; this is only routing and cadence.
//
// Grounded on the teacher's internal/config/config.go (yaml.v3 load +
// BatteryConfig/MergeBattery override pattern), adapted from battery
// parameters to scenario paths/overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk configuration shape (YAML).
type Scenario struct {
	Name           string            `yaml:"name"`
	InputDataPath  string            `yaml:"input_data_path"`
	OutputDataPath string            `yaml:"output_data_path"`
	Rolling        RollingConfig     `yaml:"rolling"`
	Remote         RemoteConfig      `yaml:"remote"`
	Preset         FleetPresetConfig `yaml:"preset"`
}

// FleetPresetConfig optionally names a unit-catalog preset
// (internal/data.FleetPreset) to layer under unit_data.csv. File
// defaults to data.GetDefaultPresetsPath() when empty.
type FleetPresetConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// RollingConfig carries the scenario file's rolling.days_per_solve. It is
// parsed and merged by MergeOverrides, but the rolling driver does not
// read it: the window size always comes from settings.csv's DaysPerSolve
// (SPEC_FULL.md 4.10).
type RollingConfig struct {
	DaysPerSolve int `yaml:"days_per_solve"`
}

// RemoteConfig optionally sources demand from the remote forecast
// client (internal/data.RemoteClient) instead of a static demand.csv.
type RemoteConfig struct {
	Enabled bool   `yaml:"enabled"`
	Region  string `yaml:"region"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	s, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadUnchecked loads a scenario file without validating it, resolving
// input_data_path/output_data_path relative to the scenario file's
// directory when given as relative paths.
func LoadUnchecked(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	s.InputDataPath = resolveRelative(dir, s.InputDataPath)
	s.OutputDataPath = resolveRelative(dir, s.OutputDataPath)
	s.Preset.File = resolveRelative(dir, s.Preset.File)

	return &s, nil
}

func resolveRelative(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks the scenario has enough information to run.
func (s *Scenario) Validate() error {
	if s == nil {
		return errors.New("scenario config is nil")
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.InputDataPath == "" {
		return errors.New("input_data_path is required")
	}
	if s.OutputDataPath == "" {
		return errors.New("output_data_path is required")
	}
	if s.Remote.Enabled && s.Remote.Region == "" {
		return fmt.Errorf("remote.region is required when remote.enabled is true")
	}
	return nil
}

// MergeOverrides overlays non-zero fields from override onto base,
// matching the teacher's MergeBattery pattern. The API handler does not
// call it; requests carry only a name and paths and go to engine.Run.
func MergeOverrides(base, override Scenario) Scenario {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.InputDataPath != "" {
		out.InputDataPath = override.InputDataPath
	}
	if override.OutputDataPath != "" {
		out.OutputDataPath = override.OutputDataPath
	}
	if override.Rolling.DaysPerSolve != 0 {
		out.Rolling.DaysPerSolve = override.Rolling.DaysPerSolve
	}
	if override.Remote.Enabled {
		out.Remote = override.Remote
	}
	if override.Preset.Name != "" {
		out.Preset = override.Preset
	}
	return out
}
