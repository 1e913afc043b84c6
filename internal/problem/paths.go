package problem

import "path/filepath"

// Paths collects every input/output path a run touches, matching
// original_source/pyuc/setup_problem.py's initialise_paths.
type Paths struct {
	InputData          string
	Settings           string
	UnitData           string
	VariableTraces     string
	InitialState       string
	Demand             string
	ReserveRequirement string
	ConstraintList     string
	Outputs            string
	Results            string
}

// BuildPaths resolves every well-known input filename under
// inputDataPath and the output/results directories under
// outputDataPath/name (spec.md 6).
func BuildPaths(inputDataPath, outputDataPath, name string) Paths {
	return Paths{
		InputData:          inputDataPath,
		Settings:           filepath.Join(inputDataPath, "settings.csv"),
		UnitData:           filepath.Join(inputDataPath, "unit_data.csv"),
		VariableTraces:     filepath.Join(inputDataPath, "variable_traces.csv"),
		InitialState:       filepath.Join(inputDataPath, "initial_state.csv"),
		Demand:             filepath.Join(inputDataPath, "demand.csv"),
		ReserveRequirement: filepath.Join(inputDataPath, "reserve_requirement.csv"),
		ConstraintList:     filepath.Join(inputDataPath, "constraint_list.csv"),
		Outputs:            filepath.Join(outputDataPath, name),
		Results:            filepath.Join(outputDataPath, name, "results"),
	}
}
