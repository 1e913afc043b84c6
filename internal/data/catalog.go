package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// LoadCatalog reads unit_data.csv, indexed by Unit, into a uc.Catalog.
// Missing numeric columns default to 0 (spec.md 3: "Missing values
// default to 0"), matching original_source/pyuc/load_data.py's
// pd.read_csv(...).fillna(0). A duplicate Unit key is a
// ConsistencyError (SPEC_FULL.md 3).
func LoadCatalog(path string) (*uc.Catalog, error) {
	rows, err := loadCatalogRows(path)
	if err != nil {
		return nil, err
	}
	return uc.NewCatalog(rows), nil
}

// LoadCatalogWithPreset reads unit_data.csv the same way LoadCatalog
// does, then layers it over preset's rows via
// data.MergeCatalogWithPreset (SPEC_FULL.md 4.9: the preset supplies
// defaults the CSV catalog may override row-by-row).
func LoadCatalogWithPreset(path string, preset FleetPreset) (*uc.Catalog, error) {
	rows, err := loadCatalogRows(path)
	if err != nil {
		return nil, err
	}
	return uc.NewCatalog(MergeCatalogWithPreset(rows, preset)), nil
}

func loadCatalogRows(path string) ([]uc.UnitRow, error) {
	if _, err := CheckPathExists(path, "Unit Data File", true); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Unit Data File", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Unit Data File", Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	idx := columnIndex(header)

	seen := make(map[string]bool, len(rows)-1)
	out := make([]uc.UnitRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		get := func(name string) string {
			if i, ok := idx[name]; ok && i < len(row) {
				return row[i]
			}
			return ""
		}
		unit := get("Unit")
		if unit == "" {
			continue
		}
		if seen[unit] {
			return nil, &problem.ConsistencyError{Msg: fmt.Sprintf("duplicate Unit %q in unit data file %s", unit, path)}
		}
		seen[unit] = true

		ur := uc.UnitRow{
			Unit:                    unit,
			Technology:              uc.Technology(get("Technology")),
			CapacityMW:              floatOr0(get("CapacityMW")),
			NumUnits:                intOr0(get("NumUnits")),
			FuelCostPerGJ:           floatOr0(get("FuelCost$/GJ")),
			ThermalEfficiencyFrac:   floatOr0(get("ThermalEfficiencyFrac")),
			VOMPerMWh:               floatOr0(get("VOM$/MWh")),
			MinimumGenerationFrac:   floatOr0(get("MinimumGenerationFrac")),
			MinimumUpTimeHrs:        intOr0(get("MinimumUpTimeHrs")),
			MinimumDownTimeHrs:      intOr0(get("MinimumDownTimeHrs")),
			RampRatePctCapPerHr:     floatOr0(get("RampRate_pctCapphr")),
			StorageHrs:              floatOr0(get("StorageHrs")),
			RoundTripEfficiencyFrac: floatOr0(get("RoundTripEfficiencyFrac")),
		}
		out = append(out, ur)
	}

	return out, nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

func floatOr0(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func intOr0(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int(fv)
	}
	return v
}
