package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// LoadSettings reads settings.csv (columns Parameter,Type,Value) and
// returns the typed uc.Settings, matching
// original_source/pyuc/setup_problem.py's import_settings_file.
func LoadSettings(path string) (uc.Settings, error) {
	if _, err := CheckPathExists(path, "Settings File", true); err != nil {
		return uc.Settings{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return uc.Settings{}, &problem.ConfigError{Path: path, Role: "Settings File", Err: err}
	}
	defer f.Close()

	raw, err := readTypedCSV(f)
	if err != nil {
		return uc.Settings{}, &problem.ConfigError{Path: path, Role: "Settings File", Err: err}
	}

	var s uc.Settings
	if v, ok := raw["IntervalDurationHrs"]; ok {
		f, err := strconv.ParseFloat(fmt.Sprint(v), 64)
		if err != nil {
			return uc.Settings{}, &problem.ConfigError{Path: path, Role: "Settings File", Err: fmt.Errorf("IntervalDurationHrs: %w", err)}
		}
		s.IntervalDurationHrs = f
	} else {
		return uc.Settings{}, &problem.ConfigError{Path: path, Role: "Settings File", Err: fmt.Errorf("missing required setting IntervalDurationHrs")}
	}

	if v, ok := raw["ValueOfLostLoad$/MWh"]; ok {
		f, err := strconv.ParseFloat(fmt.Sprint(v), 64)
		if err != nil {
			return uc.Settings{}, &problem.ConfigError{Path: path, Role: "Settings File", Err: fmt.Errorf("ValueOfLostLoad$/MWh: %w", err)}
		}
		s.ValueOfLostLoadPerMWh = f
	} else {
		return uc.Settings{}, &problem.ConfigError{Path: path, Role: "Settings File", Err: fmt.Errorf("missing required setting ValueOfLostLoad$/MWh")}
	}

	if v, ok := raw["reserves"]; ok {
		s.Reserves = fmt.Sprint(v)
	}
	if s.Reserves == "None" || s.Reserves == "none" {
		s.Reserves = ""
	}

	if v, ok := raw["DaysPerSolve"]; ok {
		iv, err := strconv.Atoi(fmt.Sprint(v))
		if err != nil {
			return uc.Settings{}, &problem.ConfigError{Path: path, Role: "Settings File", Err: fmt.Errorf("DaysPerSolve: %w", err)}
		}
		s.DaysPerSolve = iv
	}

	return s, nil
}

// readTypedCSV parses the Parameter,Type,Value settings shape into a
// map of Go-typed values (int, float64, string, bool), matching
// import_settings_file's per-row type dispatch.
func readTypedCSV(f *os.File) (map[string]any, error) {
	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return map[string]any{}, nil
	}
	header := rows[0]
	col := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(h, name) {
				return i
			}
		}
		return -1
	}
	pCol, tCol, vCol := col("Parameter"), col("Type"), col("Value")
	if pCol < 0 || tCol < 0 || vCol < 0 {
		return nil, fmt.Errorf("settings file must have Parameter,Type,Value columns")
	}

	out := make(map[string]any, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= vCol {
			continue
		}
		key := row[pCol]
		kind := row[tCol]
		value := row[vCol]

		switch kind {
		case "int":
			iv, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", key, err)
			}
			out[key] = iv
		case "float":
			fv, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", key, err)
			}
			out[key] = fv
		case "bool":
			out[key] = strings.EqualFold(value, "true")
		case "str":
			out[key] = value
		default:
			out[key] = value
		}
	}
	return out, nil
}
