// Package data implements the CSV/JSON loaders for the unit-commitment
// engine's input files (spec.md 6), grounded on
// original_source/pyuc/load_data.py and original_source/pyuc/setup_problem.py.
package data

import (
	"os"

	"ucopt/internal/problem"
)

// CheckPathExists mirrors original_source/pyuc/utils.check_path_exists:
// a required file that is missing is reported as a ConfigError for the
// caller to surface and exit on; an optional file that is missing
// returns ok=false with no error, so the caller can elide the associated
// constraint (spec.md 6: "Exit codes").
func CheckPathExists(path, role string, required bool) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if !required {
			return false, nil
		}
		return false, &problem.ConfigError{Path: path, Role: role, Err: err}
	}
	return true, nil
}
