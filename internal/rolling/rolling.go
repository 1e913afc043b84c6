// Package rolling implements the rolling-horizon driver: it partitions
// a full demand/variable-trace horizon into day-sized windows and
// solves each window as its own unit-commitment problem, folding the
// final interval's state forward as the next window's initial state.
//
// This is the fully-built counterpart of
// original_source/pyuc/pyuc_series.py's run_series_problem, whose
// get_days/update_initial_state/call_pyuc are stubs in the retrieved
// source -- the day partitioning and state folding here is built
// directly from spec.md 4.7's description since there is no working
// pyuc implementation of it to adapt.
package rolling

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"ucopt/internal/data"
	"ucopt/internal/engine"
	"ucopt/internal/problem"
	"ucopt/internal/solver"
	"ucopt/internal/uc"
)

// DayResult is one window's solve outcome.
type DayResult struct {
	Day    int
	Name   string
	Result solver.Result
}

// Run partitions the demand/variable traces under inputDataPath into
// windows of Settings.DaysPerSolve days (default 1) and solves each in
// turn, writing every day's outputs under
// <outputDataPath>/<name>/days/<name>_day%03d/. It stops at the first
// day that does not solve to optimality.
func Run(ctx context.Context, name, inputDataPath, outputDataPath string) ([]DayResult, error) {
	settingsPath := filepath.Join(inputDataPath, "settings.csv")
	settings, err := data.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	demand, err := data.LoadDemand(filepath.Join(inputDataPath, "demand.csv"))
	if err != nil {
		return nil, err
	}
	variable, err := data.LoadVariableTraces(filepath.Join(inputDataPath, "variable_traces.csv"))
	if err != nil {
		return nil, err
	}
	catalog, err := data.LoadCatalog(filepath.Join(inputDataPath, "unit_data.csv"))
	if err != nil {
		return nil, err
	}
	initState, err := data.LoadInitialState(filepath.Join(inputDataPath, "initial_state.csv"))
	if err != nil {
		return nil, err
	}

	intervalsPerDay := intervalsPerDay(settings)
	daysPerSolve := settings.DaysPerSolve
	if daysPerSolve < 1 {
		daysPerSolve = 1
	}
	windowSize := intervalsPerDay * daysPerSolve

	windows := partition(sortedKeys(demand), windowSize)

	maxLookback := maxUpDownTime(catalog)

	seriesDir := filepath.Join(outputDataPath, name, "days")

	var results []DayResult
	for day, window := range windows {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		dayName := fmt.Sprintf("%s_day%03d", name, day)
		dayInputDir := filepath.Join(seriesDir, dayName, "inputs")

		if err := writeDayInputs(dayInputDir, inputDataPath, window, demand, variable, initState); err != nil {
			return results, fmt.Errorf("prepare day %d inputs: %w", day, err)
		}

		p, result, err := engine.Run(ctx, dayName, dayInputDir, seriesDir)
		if err != nil {
			return results, fmt.Errorf("solve day %d: %w", day, err)
		}
		results = append(results, DayResult{Day: day, Name: dayName, Result: result})

		if result.Status != solver.Optimal {
			break
		}

		initState = foldState(p, maxLookback)
	}

	return results, nil
}

// intervalsPerDay converts the 24-hour day into a count of intervals
// given the settings' interval duration, rounding to the nearest whole
// interval (spec.md 3: intervals are the atomic planning unit).
func intervalsPerDay(s uc.Settings) int {
	if s.IntervalDurationHrs <= 0 {
		return 24
	}
	return int(math.Round(24 / s.IntervalDurationHrs))
}

// maxUpDownTime returns the longest minimum up/down time (in intervals)
// across the fleet, the number of trailing intervals of
// num_starting_up/num_shutting_down a fold must carry forward so the
// next window's minimum up/down time constraints see a complete history.
func maxUpDownTime(catalog *uc.Catalog) int {
	max := 0
	for _, row := range catalog.Rows {
		if row.MinimumUpTimeHrs > max {
			max = row.MinimumUpTimeHrs
		}
		if row.MinimumDownTimeHrs > max {
			max = row.MinimumDownTimeHrs
		}
	}
	return max
}

func sortedKeys(demand map[int]float64) []int {
	keys := make([]int, 0, len(demand))
	for k := range demand {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// partition splits sorted intervals into consecutive windows of at most
// windowSize entries; the final window may be shorter.
func partition(sortedIntervals []int, windowSize int) [][]int {
	if windowSize < 1 {
		windowSize = len(sortedIntervals)
	}
	var out [][]int
	for start := 0; start < len(sortedIntervals); start += windowSize {
		end := start + windowSize
		if end > len(sortedIntervals) {
			end = len(sortedIntervals)
		}
		out = append(out, sortedIntervals[start:end])
	}
	return out
}

// writeDayInputs materializes one window's scoped input directory: the
// unchanged settings/unit-data/constraint-list/reserve-requirement
// files copied verbatim, and demand/variable_traces/initial_state
// rewritten for the window, with intervals renumbered to a 0-based
// local index (so each day's initial-state negative-offset columns
// anchor consistently at its own first interval).
func writeDayInputs(dayInputDir, sourceDir string, window []int, demand map[int]float64, variable map[uc.Technology]map[int]float64, initState *uc.InitialState) error {
	if err := os.MkdirAll(dayInputDir, 0o755); err != nil {
		return err
	}

	for _, base := range []string{"settings.csv", "unit_data.csv", "constraint_list.csv", "reserve_requirement.csv"} {
		if err := copyIfExists(filepath.Join(sourceDir, base), filepath.Join(dayInputDir, base)); err != nil {
			return err
		}
	}

	if err := writeDemandWindow(filepath.Join(dayInputDir, "demand.csv"), window, demand); err != nil {
		return err
	}
	if variable != nil {
		if err := writeVariableWindow(filepath.Join(dayInputDir, "variable_traces.csv"), window, variable); err != nil {
			return err
		}
	}
	if initState != nil {
		if err := writeInitialState(filepath.Join(dayInputDir, "initial_state.csv"), initState); err != nil {
			return err
		}
	}

	return nil
}

func copyIfExists(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func writeDemandWindow(path string, window []int, demand map[int]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Interval", "Demand"}); err != nil {
		return err
	}
	for local, abs := range window {
		row := []string{strconv.Itoa(local), strconv.FormatFloat(demand[abs], 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeVariableWindow(path string, window []int, variable map[uc.Technology]map[int]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	techs := make([]string, 0, len(variable))
	for t := range variable {
		techs = append(techs, string(t))
	}
	sort.Strings(techs)

	header := append([]string{"Interval"}, techs...)
	if err := w.Write(header); err != nil {
		return err
	}
	for local, abs := range window {
		row := make([]string, len(techs)+1)
		row[0] = strconv.Itoa(local)
		for i, t := range techs {
			row[i+1] = strconv.FormatFloat(variable[uc.Technology(t)][abs], 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// writeInitialState serializes an InitialState back into the two-
// header-row CSV data.LoadInitialState reads.
func writeInitialState(path string, state *uc.InitialState) error {
	cells := state.Cells()
	if len(cells) == 0 {
		return nil
	}

	type col struct {
		varName string
		rel     int
	}
	colSet := make(map[col]bool)
	unitSet := make(map[string]bool)
	for k := range cells {
		colSet[col{k.Var, k.RelInterval}] = true
		unitSet[k.Unit] = true
	}

	cols := make([]col, 0, len(colSet))
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].varName != cols[j].varName {
			return cols[i].varName < cols[j].varName
		}
		return cols[i].rel < cols[j].rel
	})

	units := make([]string, 0, len(unitSet))
	for u := range unitSet {
		units = append(units, u)
	}
	sort.Strings(units)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header0 := make([]string, len(cols)+1)
	header1 := make([]string, len(cols)+1)
	for i, c := range cols {
		header0[i+1] = c.varName
		header1[i+1] = strconv.Itoa(c.rel)
	}
	if err := w.Write(header0); err != nil {
		return err
	}
	if err := w.Write(header1); err != nil {
		return err
	}

	for _, u := range units {
		row := make([]string, len(cols)+1)
		row[0] = u
		for i, c := range cols {
			row[i+1] = strconv.FormatFloat(state.Get(u, c.varName, c.rel), 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// foldState reads a solved day's final interval (and, for the
// transition counters, its trailing maxLookback intervals) and returns
// them as the next day's initial state, per spec.md 4.7's state-folding
// description.
func foldState(p *problem.Problem, maxLookback int) *uc.InitialState {
	out := uc.NewInitialState(nil)

	indices := p.Sets.Intervals.Indices
	if len(indices) == 0 {
		return out
	}
	last := indices[len(indices)-1].(int)

	for _, uAny := range p.Sets.UnitsCommit.Indices {
		u := uAny.(string)

		if idx, ok := p.Vars.NumCommitted.IndexOf(last, u); ok {
			out.Set(u, "num_committed", -1, p.Vars.NumCommitted.Values[idx])
		}
		if idx, ok := p.Vars.PowerGenerated.IndexOf(last, u); ok {
			out.Set(u, "power_generated", -1, p.Vars.PowerGenerated.Values[idx])
		}

		for k := 0; k < maxLookback; k++ {
			i := last - k
			rel := -(k + 1)
			if idx, ok := p.Vars.NumStartingUp.IndexOf(i, u); ok {
				out.Set(u, "num_starting_up", rel, p.Vars.NumStartingUp.Values[idx])
			}
			if idx, ok := p.Vars.NumShuttingDown.IndexOf(i, u); ok {
				out.Set(u, "num_shutting_down", rel, p.Vars.NumShuttingDown.Values[idx])
			}
		}
	}

	for _, uAny := range p.Sets.UnitsStorage.Indices {
		u := uAny.(string)
		if idx, ok := p.Vars.StoredEnergy.IndexOf(last, u); ok {
			out.Set(u, "stored_energy", -1, p.Vars.StoredEnergy.Values[idx])
		}
	}

	return out
}
