package data

import (
	"testing"

	"ucopt/internal/uc"
)

func TestLoadCatalog_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unit_data.csv",
		"Unit,Technology,CapacityMW,NumUnits,FuelCost$/GJ,ThermalEfficiencyFrac,VOM$/MWh,"+
			"MinimumGenerationFrac,MinimumUpTimeHrs,MinimumDownTimeHrs,RampRate_pctCapphr,"+
			"StorageHrs,RoundTripEfficiencyFrac\n"+
			"Coal1,Coal,500,1,2,0.35,3,0.4,4,4,0.1,0,0\n")

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row, ok := catalog.Get("Coal1")
	if !ok {
		t.Fatalf("unit Coal1 not found")
	}
	if row.Technology != uc.TechCoal || row.CapacityMW != 500 || row.MinimumUpTimeHrs != 4 {
		t.Errorf("got %+v, want CapacityMW=500 Technology=Coal MinimumUpTimeHrs=4", row)
	}
}

func TestLoadCatalog_DuplicateUnitIsAConsistencyError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unit_data.csv", "Unit,Technology\nCoal1,Coal\nCoal1,Coal\n")

	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("got nil error, want a ConsistencyError for the duplicate Unit")
	}
}

func TestMergeUnitRow_OverrideNonZeroFieldsWin(t *testing.T) {
	base := uc.UnitRow{Unit: "U1", Technology: uc.TechCoal, CapacityMW: 100, NumUnits: 2}
	override := uc.UnitRow{Unit: "U1", CapacityMW: 150}

	got := MergeUnitRow(base, override)
	if got.CapacityMW != 150 {
		t.Errorf("CapacityMW: got %v, want 150 (override wins)", got.CapacityMW)
	}
	if got.Technology != uc.TechCoal {
		t.Errorf("Technology: got %v, want Coal (base retained, override was zero-value)", got.Technology)
	}
	if got.NumUnits != 2 {
		t.Errorf("NumUnits: got %v, want 2 (base retained)", got.NumUnits)
	}
}

func TestMergeCatalogWithPreset_PresetSuppliesDefaultsCSVOverrides(t *testing.T) {
	preset := FleetPreset{
		Name: "coal_heavy",
		Rows: []uc.UnitRow{
			{Unit: "Coal1", Technology: uc.TechCoal, CapacityMW: 400, NumUnits: 1},
			{Unit: "Coal2", Technology: uc.TechCoal, CapacityMW: 300, NumUnits: 1},
		},
	}
	csvRows := []uc.UnitRow{
		{Unit: "Coal1", CapacityMW: 450},
		{Unit: "Wind1", Technology: uc.TechWind, CapacityMW: 50},
	}

	merged := MergeCatalogWithPreset(csvRows, preset)
	catalog := uc.NewCatalog(merged)

	coal1, ok := catalog.Get("Coal1")
	if !ok || coal1.CapacityMW != 450 {
		t.Errorf("Coal1: got %+v, want CapacityMW=450 (CSV override)", coal1)
	}
	coal2, ok := catalog.Get("Coal2")
	if !ok || coal2.CapacityMW != 300 {
		t.Errorf("Coal2: got %+v, want CapacityMW=300 (preset-only, carried through)", coal2)
	}
	wind1, ok := catalog.Get("Wind1")
	if !ok || wind1.Technology != uc.TechWind {
		t.Errorf("Wind1: got %+v, want a CSV-only unit appended as-is", wind1)
	}
	if len(merged) != 3 {
		t.Fatalf("got %d merged rows, want 3", len(merged))
	}
}

func TestLoadCatalogWithPreset_MergesFileWithPreset(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unit_data.csv", "Unit,Technology,CapacityMW\nCoal1,Coal,450\n")

	preset := FleetPreset{
		Name: "coal_heavy",
		Rows: []uc.UnitRow{
			{Unit: "Coal1", Technology: uc.TechCoal, CapacityMW: 400, NumUnits: 2},
		},
	}

	catalog, err := LoadCatalogWithPreset(path, preset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row, ok := catalog.Get("Coal1")
	if !ok {
		t.Fatalf("unit Coal1 not found")
	}
	if row.CapacityMW != 450 {
		t.Errorf("CapacityMW: got %v, want 450 (CSV override)", row.CapacityMW)
	}
	if row.NumUnits != 2 {
		t.Errorf("NumUnits: got %v, want 2 (preset default, CSV left it zero)", row.NumUnits)
	}
}
