package rolling

import (
	"testing"

	"ucopt/internal/data"
	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

func TestPartition_SplitsIntoFixedSizeWindows(t *testing.T) {
	got := partition([]int{0, 1, 2, 3, 4, 5, 6}, 3)
	want := [][]int{{0, 1, 2}, {3, 4, 5}, {6}}
	if len(got) != len(want) {
		t.Fatalf("got %d windows, want %d", len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("window %d: got %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("window %d: got %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestPartition_ZeroWindowSizeIsOneBigWindow(t *testing.T) {
	got := partition([]int{0, 1, 2}, 0)
	if len(got) != 1 || len(got[0]) != 3 {
		t.Fatalf("got %v, want a single window covering the whole horizon", got)
	}
}

func TestIntervalsPerDay_RoundsToNearestWhole(t *testing.T) {
	if got := intervalsPerDay(uc.Settings{IntervalDurationHrs: 0.5}); got != 48 {
		t.Errorf("0.5h intervals: got %d, want 48", got)
	}
	if got := intervalsPerDay(uc.Settings{IntervalDurationHrs: 1}); got != 24 {
		t.Errorf("1h intervals: got %d, want 24", got)
	}
	if got := intervalsPerDay(uc.Settings{}); got != 24 {
		t.Errorf("unset interval duration: got %d, want a 24-interval default", got)
	}
}

func TestMaxUpDownTime_TakesFleetMaximum(t *testing.T) {
	catalog := uc.NewCatalog([]uc.UnitRow{
		{Unit: "U1", MinimumUpTimeHrs: 2, MinimumDownTimeHrs: 5},
		{Unit: "U2", MinimumUpTimeHrs: 7, MinimumDownTimeHrs: 1},
	})
	if got := maxUpDownTime(catalog); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

// TestWriteInitialState_RoundTripsThroughLoadInitialState exercises the
// round-trip law between the rolling driver's writer and the loader
// data.LoadInitialState parses, since a window's folded state must be
// readable by the very same loader the engine uses.
func TestWriteInitialState_RoundTripsThroughLoadInitialState(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/initial_state.csv"

	state := uc.NewInitialState(nil)
	state.Set("U1", "num_committed", -1, 2)
	state.Set("U1", "num_starting_up", -1, 1)
	state.Set("U1", "num_starting_up", -2, 3)
	state.Set("B1", "stored_energy", -1, 40.5)

	if err := writeInitialState(path, state); err != nil {
		t.Fatalf("writeInitialState: %v", err)
	}

	loaded, err := data.LoadInitialState(path)
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}

	cases := []struct {
		unit, varName string
		rel           int
		want          float64
	}{
		{"U1", "num_committed", -1, 2},
		{"U1", "num_starting_up", -1, 1},
		{"U1", "num_starting_up", -2, 3},
		{"B1", "stored_energy", -1, 40.5},
	}
	for _, c := range cases {
		if got := loaded.Get(c.unit, c.varName, c.rel); got != c.want {
			t.Errorf("Get(%s, %s, %d) = %v, want %v", c.unit, c.varName, c.rel, got, c.want)
		}
	}
}

// TestFoldState_CarriesLookbackWindowForTransitionCounters exercises
// foldState's trailing-window folding: with maxLookback=2, the fold
// must carry the last two intervals' num_starting_up/num_shutting_down
// values (at relative offsets -1 and -2), plus the final interval's
// num_committed and power_generated.
func TestFoldState_CarriesLookbackWindowForTransitionCounters(t *testing.T) {
	catalog := uc.NewCatalog([]uc.UnitRow{
		{Unit: "U1", Technology: uc.TechCoal},
		{Unit: "B1", Technology: uc.TechStorage},
	})
	demand := map[int]float64{0: 1, 1: 1, 2: 1}
	sets, err := uc.CreateSets(demand, catalog, nil)
	if err != nil {
		t.Fatalf("CreateSets: %v", err)
	}
	vars := uc.CreateVariables(sets)

	set := func(v *uc.Var, i int, u string, val float64) {
		idx, ok := v.IndexOf(i, u)
		if !ok {
			t.Fatalf("no slot for (%d, %s) in %s", i, u, v.Name)
		}
		v.Values[idx] = val
	}
	set(vars.NumCommitted, 2, "U1", 3)
	set(vars.PowerGenerated, 2, "U1", 150)
	set(vars.NumStartingUp, 2, "U1", 1)
	set(vars.NumStartingUp, 1, "U1", 5)
	set(vars.NumShuttingDown, 2, "U1", 0)
	set(vars.NumShuttingDown, 1, "U1", 2)
	set(vars.StoredEnergy, 2, "B1", 77)

	p := &problem.Problem{Sets: sets, Vars: vars}

	folded := foldState(p, 2)
	if got := folded.Get("U1", "num_committed", -1); got != 3 {
		t.Errorf("num_committed[-1] = %v, want 3", got)
	}
	if got := folded.Get("U1", "power_generated", -1); got != 150 {
		t.Errorf("power_generated[-1] = %v, want 150", got)
	}
	if got := folded.Get("U1", "num_starting_up", -1); got != 1 {
		t.Errorf("num_starting_up[-1] = %v, want 1", got)
	}
	if got := folded.Get("U1", "num_starting_up", -2); got != 5 {
		t.Errorf("num_starting_up[-2] = %v, want 5", got)
	}
	if got := folded.Get("U1", "num_shutting_down", -2); got != 2 {
		t.Errorf("num_shutting_down[-2] = %v, want 2", got)
	}
	if got := folded.Get("B1", "stored_energy", -1); got != 77 {
		t.Errorf("stored_energy[-1] = %v, want 77", got)
	}
	// power_generated is not folded for storage units -- only
	// units_commit feed the ramp constraints that need it.
	if got := folded.Get("B1", "power_generated", -1); got != 0 {
		t.Errorf("power_generated[-1] for a storage unit = %v, want 0 (not folded)", got)
	}
}
