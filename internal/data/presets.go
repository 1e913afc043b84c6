package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ucopt/internal/uc"
)

// FleetPreset names a reusable unit catalog -- a named bundle of
// uc.UnitRow entries a scenario can reference instead of (or as a
// default layer under) its own unit_data.csv, adapted from the
// teacher's Location (internal/data/locations.go), repurposed from
// grid-node metadata to fleet rows the same way RemoteClient was
// repurposed from LMP intervals to demand-forecast intervals.
type FleetPreset struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Rows        []uc.UnitRow `json:"rows"`
}

// FleetPresetList is a collection of presets, e.g. "coal_heavy" or
// "high_renewables" shipped alongside a scenario library.
type FleetPresetList struct {
	UpdatedAt string        `json:"updated_at"`
	Presets   []FleetPreset `json:"presets"`
}

// LoadPresets loads a preset catalog from a JSON file.
func LoadPresets(filePath string) (*FleetPresetList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var list FleetPresetList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse presets file: %w", err)
	}
	return &list, nil
}

// SavePresets writes a preset catalog to a JSON file, creating parent
// directories as needed.
func SavePresets(list *FleetPresetList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}
	if err := os.WriteFile(filePath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write presets file: %w", err)
	}
	return nil
}

// GetDefaultPresetsPath returns the default presets catalog path,
// overridable via SCENARIO_PRESETS_FILE.
func GetDefaultPresetsPath() string {
	if path := os.Getenv("SCENARIO_PRESETS_FILE"); path != "" {
		return path
	}
	return "./data/fleet_presets.json"
}

// Find returns the preset with the given name, if present.
func (l *FleetPresetList) Find(name string) (FleetPreset, bool) {
	if l == nil {
		return FleetPreset{}, false
	}
	for _, p := range l.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return FleetPreset{}, false
}

// MergeUnitRow overlays override's non-zero fields onto base, the same
// override direction as config.MergeOverrides: a preset row supplies
// defaults, the CSV catalog's row overrides them field by field.
func MergeUnitRow(base, override uc.UnitRow) uc.UnitRow {
	out := base
	if override.Technology != "" {
		out.Technology = override.Technology
	}
	if override.CapacityMW != 0 {
		out.CapacityMW = override.CapacityMW
	}
	if override.NumUnits != 0 {
		out.NumUnits = override.NumUnits
	}
	if override.FuelCostPerGJ != 0 {
		out.FuelCostPerGJ = override.FuelCostPerGJ
	}
	if override.ThermalEfficiencyFrac != 0 {
		out.ThermalEfficiencyFrac = override.ThermalEfficiencyFrac
	}
	if override.VOMPerMWh != 0 {
		out.VOMPerMWh = override.VOMPerMWh
	}
	if override.MinimumGenerationFrac != 0 {
		out.MinimumGenerationFrac = override.MinimumGenerationFrac
	}
	if override.MinimumUpTimeHrs != 0 {
		out.MinimumUpTimeHrs = override.MinimumUpTimeHrs
	}
	if override.MinimumDownTimeHrs != 0 {
		out.MinimumDownTimeHrs = override.MinimumDownTimeHrs
	}
	if override.RampRatePctCapPerHr != 0 {
		out.RampRatePctCapPerHr = override.RampRatePctCapPerHr
	}
	if override.StorageHrs != 0 {
		out.StorageHrs = override.StorageHrs
	}
	if override.RoundTripEfficiencyFrac != 0 {
		out.RoundTripEfficiencyFrac = override.RoundTripEfficiencyFrac
	}
	return out
}

// MergeCatalogWithPreset layers preset.Rows as defaults under csvRows,
// keyed by Unit: a unit present in both gets the CSV row's non-zero
// fields merged onto the preset row, a unit present only in the preset
// is carried through unchanged, and a unit only in the CSV is appended
// as-is. Row order follows the preset first, then any CSV-only units.
func MergeCatalogWithPreset(csvRows []uc.UnitRow, preset FleetPreset) []uc.UnitRow {
	merged := make(map[string]uc.UnitRow, len(preset.Rows))
	order := make([]string, 0, len(preset.Rows)+len(csvRows))
	for _, r := range preset.Rows {
		merged[r.Unit] = r
		order = append(order, r.Unit)
	}
	for _, r := range csvRows {
		if base, ok := merged[r.Unit]; ok {
			merged[r.Unit] = MergeUnitRow(base, r)
			continue
		}
		merged[r.Unit] = r
		order = append(order, r.Unit)
	}

	out := make([]uc.UnitRow, 0, len(order))
	for _, u := range order {
		out = append(out, merged[u])
	}
	return out
}
