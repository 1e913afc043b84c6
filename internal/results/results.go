// Package results extracts solved decision-variable values into the
// dimension-specific tabular CSVs spec.md 4.2/4.6 describes, grounded on
// the teacher's internal/backtest/csv.go writer style and
// original_source/pyuc's *_dim_to_df/to_csv result extraction.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// WriteAll writes every declared decision variable's result table under
// <outputs>/<name>/results/<var>_<units>.csv (spec.md 4.6).
func WriteAll(p *problem.Problem) error {
	for _, v := range p.Vars.All() {
		path := filepath.Join(p.Paths.Results, v.ResultFilename())
		if err := writeVar(path, v); err != nil {
			return fmt.Errorf("write results for %s: %w", v.Name, err)
		}
	}
	return nil
}

func writeVar(path string, v *uc.Var) error {
	switch len(v.Sets) {
	case 1:
		return write1D(path, v)
	case 2:
		return write2D(path, v)
	case 3:
		return write3D(path, v)
	case 4:
		return write4D(path, v)
	default:
		return fmt.Errorf("unsupported variable dimensionality: %d", len(v.Sets))
	}
}

func write1D(path string, v *uc.Var) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{v.Sets[0].Name, "Value"}); err != nil {
		return err
	}
	for i, key := range v.Keys {
		row := []string{fmt.Sprint(key[0]), fmtValue(v, v.Values[i])}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func write2D(path string, v *uc.Var) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	rows := v.Sets[0].Indices
	cols := v.Sets[1].Indices

	header := make([]string, len(cols)+1)
	header[0] = v.Sets[0].Name
	for i, c := range cols {
		header[i+1] = fmt.Sprint(c)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	table := v.Table2D()
	for ri, r := range rows {
		row := make([]string, len(cols)+1)
		row[0] = fmt.Sprint(r)
		for ci := range cols {
			row[ci+1] = fmtValue(v, table[ri][ci])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func write3D(path string, v *uc.Var) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	cols := v.Sets[2].Indices
	header := make([]string, len(cols)+2)
	header[0] = v.Sets[0].Name
	header[1] = v.Sets[1].Name
	for i, c := range cols {
		header[i+2] = fmt.Sprint(c)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range v.Table3D() {
		out := make([]string, len(cols)+2)
		out[0] = fmt.Sprint(row.Key0)
		out[1] = fmt.Sprint(row.Key1)
		for ci := range cols {
			out[ci+2] = fmtValue(v, row.Cols[ci])
		}
		if err := w.Write(out); err != nil {
			return err
		}
	}
	return w.Error()
}

func write4D(path string, v *uc.Var) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	cols := v.Sets[3].Indices
	header := make([]string, len(cols)+3)
	header[0] = v.Sets[0].Name
	header[1] = v.Sets[1].Name
	header[2] = v.Sets[2].Name
	for i, c := range cols {
		header[i+3] = fmt.Sprint(c)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range v.Table4D() {
		out := make([]string, len(cols)+3)
		out[0] = fmt.Sprint(row.Key0)
		out[1] = fmt.Sprint(row.Key1)
		out[2] = fmt.Sprint(row.Key2)
		for ci := range cols {
			out[ci+3] = fmtValue(v, row.Cols[ci])
		}
		if err := w.Write(out); err != nil {
			return err
		}
	}
	return w.Error()
}

// fmtValue formats a value per spec.md 4.2: integer/binary variables
// round-trip as integers, continuous variables as floats.
func fmtValue(v *uc.Var, x float64) string {
	if v.Type == uc.Continuous {
		return strconv.FormatFloat(x, 'f', 6, 64)
	}
	return strconv.FormatInt(int64(x+0.5), 10)
}
