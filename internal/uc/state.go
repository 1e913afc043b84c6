package uc

// Traces holds the demand and variable-resource availability time
// series (spec.md 3).
type Traces struct {
	// Demand maps interval -> MW.
	Demand map[int]float64

	// Variable maps technology -> interval -> availability in [0,1].
	// Nil if variable_traces.csv was absent (spec.md 6: "Absent file ->
	// no variable-resource constraint emitted").
	Variable map[Technology]map[int]float64
}

// Settings holds the typed scalar settings (spec.md 3/6).
type Settings struct {
	IntervalDurationHrs float64
	ValueOfLostLoadPerMWh float64
	Reserves            string // "", "None", or "RaiseAndLower"

	// DaysPerSolve is the rolling-horizon window size in days (SPEC_FULL.md
	// 4.10). Optional; when it is omitted (or below 1) the rolling driver
	// solves one day per window.
	DaysPerSolve int
}

// ReserveLabels returns the reserve-direction labels implied by
// Settings.Reserves (spec.md 3: reserves set).
func (s Settings) ReserveLabels() []string {
	switch s.Reserves {
	case "RaiseAndLower":
		return []string{"raise", "lower"}
	default:
		return nil
	}
}

// InitialStateKey identifies one cell of the initial-state table
// (spec.md 3): a unit, a tracked variable name, and a relative interval
// (always <= -1, counting back from the first modeled interval).
type InitialStateKey struct {
	Unit        string
	Var         string
	RelInterval int
}

// InitialState is the left-boundary condition table. A missing cell
// defaults to 0 (spec.md 3: "Missing entries default to 0; a
// wholly-absent initial state is treated as all zeros").
type InitialState struct {
	values map[InitialStateKey]float64
}

// NewInitialState builds an InitialState from a pre-populated map (e.g.
// from the CSV loader); a nil map is valid and behaves as all-zeros.
func NewInitialState(values map[InitialStateKey]float64) *InitialState {
	return &InitialState{values: values}
}

// Get returns the value at (unit, varName, relInterval), or 0 if absent.
func (s *InitialState) Get(unit, varName string, relInterval int) float64 {
	if s == nil || s.values == nil {
		return 0
	}
	return s.values[InitialStateKey{Unit: unit, Var: varName, RelInterval: relInterval}]
}

// Set stores a value, used by the rolling-horizon driver when folding a
// solved day's final state forward into the next day's initial state.
func (s *InitialState) Set(unit, varName string, relInterval int, value float64) {
	if s.values == nil {
		s.values = make(map[InitialStateKey]float64)
	}
	s.values[InitialStateKey{Unit: unit, Var: varName, RelInterval: relInterval}] = value
}

// Cells returns every populated (key, value) pair, for serialization.
func (s *InitialState) Cells() map[InitialStateKey]float64 {
	if s == nil {
		return nil
	}
	return s.values
}
