package uc

import "sort"

// Sets bundles every index set an assembled problem needs (spec.md 3).
type Sets struct {
	Intervals     *Set
	Units         *Set
	UnitsCommit   *Set
	UnitsVariable *Set
	UnitsStorage  *Set
	UnitsReserve  *Set
	Reserves      *Set
}

// CreateSets builds the intervals/units sets and their technology-
// derived subsets, matching original_source/pyuc/load_data.py's
// create_single_sets/create_subsets.
func CreateSets(demand map[int]float64, catalog *Catalog, reserveLabels []string) (*Sets, error) {
	intervalInts := make([]int, 0, len(demand))
	for i := range demand {
		intervalInts = append(intervalInts, i)
	}
	sort.Ints(intervalInts)

	intervals, err := NewSet("intervals", intsToAny(intervalInts), nil)
	if err != nil {
		return nil, err
	}

	unitNames := make([]string, len(catalog.Rows))
	for i, r := range catalog.Rows {
		unitNames[i] = r.Unit
	}
	units, err := NewSet("units", stringsToAny(unitNames), nil)
	if err != nil {
		return nil, err
	}

	commit := filterByTech(catalog, func(u UnitRow) bool { return u.IsCommit() })
	variable := filterByTech(catalog, func(u UnitRow) bool { return u.IsVariable() })
	storage := filterByTech(catalog, func(u UnitRow) bool { return u.IsStorage() })
	reserveEligible := filterByTech(catalog, func(u UnitRow) bool { return u.IsCommit() || u.IsStorage() })

	unitsCommit, err := NewSet("units_commit", stringsToAny(commit), units)
	if err != nil {
		return nil, err
	}
	unitsVariable, err := NewSet("units_variable", stringsToAny(variable), units)
	if err != nil {
		return nil, err
	}
	unitsStorage, err := NewSet("units_storage", stringsToAny(storage), units)
	if err != nil {
		return nil, err
	}
	unitsReserve, err := NewSet("units_reserve", stringsToAny(reserveEligible), units)
	if err != nil {
		return nil, err
	}
	reserves, err := NewSet("reserves", stringsToAny(reserveLabels), nil)
	if err != nil {
		return nil, err
	}

	return &Sets{
		Intervals:     intervals,
		Units:         units,
		UnitsCommit:   unitsCommit,
		UnitsVariable: unitsVariable,
		UnitsStorage:  unitsStorage,
		UnitsReserve:  unitsReserve,
		Reserves:      reserves,
	}, nil
}

func filterByTech(catalog *Catalog, pred func(UnitRow) bool) []string {
	out := make([]string, 0, len(catalog.Rows))
	for _, r := range catalog.Rows {
		if pred(r) {
			out = append(out, r.Unit)
		}
	}
	return out
}

func intsToAny(xs []int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func stringsToAny(xs []string) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
