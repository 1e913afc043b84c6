package results

import (
	"encoding/csv"
	"os"
)

// ReadCSV reads a result CSV back into its header and data rows, used by
// tests asserting the round-trip law (spec.md 8: "writing any decision
// variable's result to its dimensional CSV and re-reading yields the
// same values, modulo float formatting").
func ReadCSV(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}
