package data

import (
	"encoding/csv"
	"os"
	"strconv"

	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// LoadInitialState reads the two-header-row initial_state.csv (first
// header row the tracked variable name, second the relative interval,
// first column the unit) if present, matching
// original_source/pyuc/load_data.py's load_initial_state
// (pd.read_csv(..., index_col=[0], header=[0, 1])). A wholly absent
// file is a valid all-zeros initial state (spec.md 3), returned as nil.
func LoadInitialState(path string) (*uc.InitialState, error) {
	present, err := CheckPathExists(path, "Initial State File", false)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Initial State File", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Initial State File", Err: err}
	}
	if len(rows) < 2 {
		return uc.NewInitialState(nil), nil
	}

	varRow, intervalRow := rows[0], rows[1]
	values := make(map[uc.InitialStateKey]float64)

	for _, row := range rows[2:] {
		if len(row) == 0 {
			continue
		}
		unit := row[0]
		for col := 1; col < len(row) && col < len(varRow) && col < len(intervalRow); col++ {
			cell := row[col]
			if cell == "" {
				continue
			}
			varName := varRow[col]
			relInterval, err := strconv.Atoi(intervalRow[col])
			if err != nil {
				return nil, &problem.ConfigError{Path: path, Role: "Initial State File", Err: err}
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &problem.ConfigError{Path: path, Role: "Initial State File", Err: err}
			}
			values[uc.InitialStateKey{Unit: unit, Var: varName, RelInterval: relInterval}] = v
		}
	}

	return uc.NewInitialState(values), nil
}
