package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// LoadDemand reads demand.csv (indexed by Interval, single Demand
// column) into an interval->MW map, matching
// original_source/pyuc/load_data.py's load_demand_data.
func LoadDemand(path string) (map[int]float64, error) {
	if _, err := CheckPathExists(path, "Demand File", true); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Demand File", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Demand File", Err: err}
	}
	if len(rows) == 0 {
		return map[int]float64{}, nil
	}
	idx := columnIndex(rows[0])
	ival, ok1 := idx["Interval"]
	dval, ok2 := idx["Demand"]
	if !ok1 || !ok2 {
		return nil, &problem.ConfigError{Path: path, Role: "Demand File", Err: fmt.Errorf("expected Interval,Demand columns")}
	}

	out := make(map[int]float64, len(rows)-1)
	for _, row := range rows[1:] {
		i, err := strconv.Atoi(row[ival])
		if err != nil {
			return nil, &problem.ConfigError{Path: path, Role: "Demand File", Err: err}
		}
		d, err := strconv.ParseFloat(row[dval], 64)
		if err != nil {
			return nil, &problem.ConfigError{Path: path, Role: "Demand File", Err: err}
		}
		out[i] = d
	}
	return out, nil
}

// LoadVariableTraces reads variable_traces.csv (indexed by Interval, one
// column per technology) if present. A wholly absent file returns
// (nil, nil) -- spec.md 6: "Absent file -> no variable-resource
// constraint emitted" -- matching
// original_source/pyuc/load_data.py's load_variable_data.
func LoadVariableTraces(path string) (map[uc.Technology]map[int]float64, error) {
	present, err := CheckPathExists(path, "Variable Trace File", false)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Variable Trace File", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Variable Trace File", Err: err}
	}
	if len(rows) == 0 {
		return map[uc.Technology]map[int]float64{}, nil
	}
	header := rows[0]
	idx := columnIndex(header)
	ival, ok := idx["Interval"]
	if !ok {
		return nil, &problem.ConfigError{Path: path, Role: "Variable Trace File", Err: fmt.Errorf("expected an Interval column")}
	}

	out := make(map[uc.Technology]map[int]float64)
	for col, pos := range idx {
		if col == "Interval" {
			continue
		}
		out[uc.Technology(col)] = make(map[int]float64, len(rows)-1)
		for _, row := range rows[1:] {
			i, err := strconv.Atoi(row[ival])
			if err != nil {
				return nil, &problem.ConfigError{Path: path, Role: "Variable Trace File", Err: err}
			}
			v, err := strconv.ParseFloat(row[pos], 64)
			if err != nil {
				return nil, &problem.ConfigError{Path: path, Role: "Variable Trace File", Err: err}
			}
			out[uc.Technology(col)][i] = v
		}
	}
	return out, nil
}

// ValidateTraces checks the data-consistency invariants spec.md 7.2
// names: demand/variable-trace length parity and every variable unit's
// technology present in the loaded traces.
func ValidateTraces(demand map[int]float64, variable map[uc.Technology]map[int]float64, catalog *uc.Catalog) error {
	if variable == nil {
		return nil
	}
	for _, row := range catalog.Rows {
		if !row.IsVariable() {
			continue
		}
		trace, ok := variable[row.Technology]
		if !ok {
			return &problem.ConsistencyError{Msg: fmt.Sprintf("technology %q (unit %q) has no column in variable_traces.csv", row.Technology, row.Unit)}
		}
		if len(trace) != len(demand) {
			return &problem.ConsistencyError{Msg: fmt.Sprintf("variable trace for technology %q has %d intervals, demand has %d", row.Technology, len(trace), len(demand))}
		}
	}
	return nil
}
