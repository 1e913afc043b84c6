// Package engine wires the data loader, sets/variables, constraint
// registry, objective, solver, and result extractor into the single-
// horizon pipeline spec.md 2 names:
// build_paths -> load_settings -> load_data -> create_sets ->
// create_variables -> select_constraints -> add_constraints ->
// add_objective -> solve -> extract_results.
//
// This replaces original_source/pyuc/pyuc.py's run_opt_problem, which
// stops after add_constraints (a no-op stub) -- here every step is
// implemented.
package engine

import (
	"context"
	"fmt"

	"ucopt/internal/constraints"
	"ucopt/internal/data"
	"ucopt/internal/objective"
	"ucopt/internal/problem"
	"ucopt/internal/results"
	"ucopt/internal/solver"
	"ucopt/internal/uc"
)

// Run builds, solves, and writes the results for one unit-commitment
// problem over the full horizon found under inputDataPath. name scopes
// the output directory (<outputDataPath>/<name>/...).
func Run(ctx context.Context, name, inputDataPath, outputDataPath string) (*problem.Problem, solver.Result, error) {
	p := problem.New(name, inputDataPath, outputDataPath)

	if err := load(p); err != nil {
		return p, solver.Result{}, err
	}

	// Read constraint_list.csv before PrepareOutputDirs: a rolling window's
	// inputs live inside its output directory, which that call clears.
	toggles, err := data.LoadConstraintToggles(p.Paths.ConstraintList)
	if err != nil {
		return p, solver.Result{}, err
	}

	if err := p.PrepareOutputDirs(); err != nil {
		return p, solver.Result{}, err
	}

	constraints.Apply(p, constraints.DefaultRegistry(), toggles)

	objective.Build(p)

	result, err := solver.Solve(ctx, p)
	if err != nil {
		return p, result, fmt.Errorf("solve %s: %w", name, err)
	}
	if result.Status != solver.Optimal {
		return p, result, nil
	}

	if err := results.WriteAll(p); err != nil {
		return p, result, err
	}

	return p, result, nil
}

// load performs the data-loading and set/variable-construction phase,
// matching original_source/pyuc/load_data.py's load_data/create_sets
// plus pyuc.py's create_variables.
func load(p *problem.Problem) error {
	settings, err := data.LoadSettings(p.Paths.Settings)
	if err != nil {
		return err
	}
	p.Settings = settings

	catalog, err := data.LoadCatalog(p.Paths.UnitData)
	if err != nil {
		return err
	}
	p.Catalog = catalog

	demand, err := data.LoadDemand(p.Paths.Demand)
	if err != nil {
		return err
	}
	variable, err := data.LoadVariableTraces(p.Paths.VariableTraces)
	if err != nil {
		return err
	}
	if err := data.ValidateTraces(demand, variable, catalog); err != nil {
		return err
	}
	p.Traces = uc.Traces{Demand: demand, Variable: variable}

	initialState, err := data.LoadInitialState(p.Paths.InitialState)
	if err != nil {
		return err
	}
	p.InitialState = initialState

	sets, err := uc.CreateSets(demand, catalog, settings.ReserveLabels())
	if err != nil {
		return err
	}
	p.Sets = sets

	p.Vars = uc.CreateVariables(sets)

	return nil
}
