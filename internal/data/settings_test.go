package data

import (
	"testing"
)

func TestLoadSettings_ParsesTypedColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.csv", "Parameter,Type,Value\n"+
		"IntervalDurationHrs,float,0.5\n"+
		"ValueOfLostLoad$/MWh,float,10000\n"+
		"reserves,str,None\n"+
		"DaysPerSolve,int,1\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.IntervalDurationHrs != 0.5 {
		t.Errorf("IntervalDurationHrs: got %v, want 0.5", s.IntervalDurationHrs)
	}
	if s.ValueOfLostLoadPerMWh != 10000 {
		t.Errorf("ValueOfLostLoadPerMWh: got %v, want 10000", s.ValueOfLostLoadPerMWh)
	}
	if s.Reserves != "" {
		t.Errorf("Reserves: got %q, want empty (None normalizes to empty)", s.Reserves)
	}
	if s.DaysPerSolve != 1 {
		t.Errorf("DaysPerSolve: got %d, want 1", s.DaysPerSolve)
	}
}

func TestLoadSettings_MissingRequiredFieldIsAConfigError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.csv", "Parameter,Type,Value\nDaysPerSolve,int,1\n")

	if _, err := LoadSettings(path); err == nil {
		t.Fatalf("got nil error, want a ConfigError for the missing IntervalDurationHrs")
	}
}
