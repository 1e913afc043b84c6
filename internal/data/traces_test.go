package data

import (
	"os"
	"path/filepath"
	"testing"

	"ucopt/internal/uc"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadVariableTraces_AbsentFileReturnsNilNil(t *testing.T) {
	dir := t.TempDir()
	variable, err := LoadVariableTraces(filepath.Join(dir, "variable_traces.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if variable != nil {
		t.Fatalf("got %v, want nil map for an absent file", variable)
	}
}

func TestLoadVariableTraces_PresentFileParsesColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "variable_traces.csv", "Interval,Wind,Solar\n0,10,0\n1,12,5\n")

	variable, err := LoadVariableTraces(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := variable[uc.TechWind][1], 12.0; got != want {
		t.Errorf("Wind[1]: got %v, want %v", got, want)
	}
	if got, want := variable[uc.TechSolar][0], 0.0; got != want {
		t.Errorf("Solar[0]: got %v, want %v", got, want)
	}
}

// TestValidateTraces_AbsentFileIsNotAnError covers the maintainer-flagged
// regression: a catalog with units_variable rows but no
// variable_traces.csv on disk must pass validation (spec.md 6: "Absent
// file -> no variable-resource constraint emitted"), not fail with a
// ConsistencyError from a nil-map lookup.
func TestValidateTraces_AbsentFileIsNotAnError(t *testing.T) {
	catalog := uc.NewCatalog([]uc.UnitRow{
		{Unit: "W1", Technology: uc.TechWind, CapacityMW: 100},
	})
	demand := map[int]float64{0: 50, 1: 60}

	if err := ValidateTraces(demand, nil, catalog); err != nil {
		t.Fatalf("absent variable traces: got error %v, want nil", err)
	}
}

func TestValidateTraces_MissingTechnologyColumnIsAConsistencyError(t *testing.T) {
	catalog := uc.NewCatalog([]uc.UnitRow{
		{Unit: "W1", Technology: uc.TechWind, CapacityMW: 100},
	})
	demand := map[int]float64{0: 50, 1: 60}
	variable := map[uc.Technology]map[int]float64{
		uc.TechSolar: {0: 1, 1: 2},
	}

	if err := ValidateTraces(demand, variable, catalog); err == nil {
		t.Fatalf("got nil error, want a ConsistencyError for the missing Wind column")
	}
}

func TestValidateTraces_LengthMismatchIsAConsistencyError(t *testing.T) {
	catalog := uc.NewCatalog([]uc.UnitRow{
		{Unit: "W1", Technology: uc.TechWind, CapacityMW: 100},
	})
	demand := map[int]float64{0: 50, 1: 60}
	variable := map[uc.Technology]map[int]float64{
		uc.TechWind: {0: 1},
	}

	if err := ValidateTraces(demand, variable, catalog); err == nil {
		t.Fatalf("got nil error, want a ConsistencyError for the interval-count mismatch")
	}
}

func TestLoadDemand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "demand.csv", "Interval,Demand\n0,100.5\n1,110\n")

	demand, err := LoadDemand(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := demand[0], 100.5; got != want {
		t.Errorf("demand[0]: got %v, want %v", got, want)
	}
	if len(demand) != 2 {
		t.Errorf("got %d intervals, want 2", len(demand))
	}
}
