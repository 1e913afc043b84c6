package data

import (
	"encoding/csv"
	"os"
	"strings"

	"ucopt/internal/problem"
)

// LoadConstraintToggles reads constraint_list.csv (columns ID,ToInclude)
// into an ID -> included map, matching
// original_source/pyuc/constraint_adder.py's constraint_selector
// (case-insensitive TRUE/FALSE normalization). A missing file means
// every registered constraint family is included (constraint_list.csv
// is optional, not a required input).
func LoadConstraintToggles(path string) (map[string]bool, error) {
	present, err := CheckPathExists(path, "Constraint List File", false)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Constraint List File", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &problem.ConfigError{Path: path, Role: "Constraint List File", Err: err}
	}
	if len(rows) == 0 {
		return map[string]bool{}, nil
	}

	idx := columnIndex(rows[0])
	idCol, ok1 := idx["ID"]
	incCol, ok2 := idx["ToInclude"]
	if !ok1 || !ok2 {
		return nil, &problem.ConfigError{Path: path, Role: "Constraint List File", Err: os.ErrInvalid}
	}

	out := make(map[string]bool, len(rows)-1)
	for _, row := range rows[1:] {
		if idCol >= len(row) || incCol >= len(row) {
			continue
		}
		out[row[idCol]] = strings.EqualFold(strings.TrimSpace(row[incCol]), "true")
	}
	return out, nil
}
