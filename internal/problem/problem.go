package problem

import (
	"fmt"
	"os"

	"ucopt/internal/uc"
)

// ConfigError is a fatal configuration problem: a missing required
// input file or an unparseable setting (spec.md 7.1). Subset-validation
// failures from uc.NewSet are plain errors, not ConfigErrors. It carries the offending path and the file's role so
// the CLI boundary can print both, matching
// original_source/pyuc/utils.check_path_exists.
type ConfigError struct {
	Path string
	Role string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Role, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s does not exist", e.Role, e.Path)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ConsistencyError is a fatal data-consistency problem: a trace-length
// mismatch, a technology absent from variable_traces, a duplicate unit
// key, and similar (spec.md 7.2).
type ConsistencyError struct {
	Msg string
}

func (e *ConsistencyError) Error() string { return e.Msg }

// Problem is the MILP formulation under assembly: sets, catalog,
// traces, settings, variables, the growing constraint list, and the
// objective. One Problem is built per solve (spec.md 3: "A fresh
// problem is built for each rolling-horizon day").
type Problem struct {
	Name  string
	Paths Paths

	Settings     uc.Settings
	Catalog      *uc.Catalog
	Traces       uc.Traces
	InitialState *uc.InitialState

	Sets *uc.Sets
	Vars *uc.Variables

	Constraints []Constraint
	Objective   Expr
}

// New constructs an empty Problem with its paths resolved, matching
// original_source/pyuc/pyuc.py's run_opt_problem scaffolding (without
// yet loading data or creating sets/variables).
func New(name, inputDataPath, outputDataPath string) *Problem {
	return &Problem{
		Name:  name,
		Paths: BuildPaths(inputDataPath, outputDataPath, name),
	}
}

// PrepareOutputDirs removes and recreates the outputs/results
// directories. This is an explicit policy (spec.md 4.6/6: "Output
// directory is created idempotently (removed and recreated if it
// already exists)"), not an oversight -- it must be preserved.
func (p *Problem) PrepareOutputDirs() error {
	for _, dir := range []string{p.Paths.Outputs, p.Paths.Results} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("prepare output dir %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("prepare output dir %s: %w", dir, err)
		}
	}
	return nil
}

// AddConstraints appends a constraint family's output to the problem in
// the order given, preserving the registry-then-natural-order guarantee
// from spec.md 5 ("Constraints are attached to the problem in registry
// order; within a family, by the natural order of (intervals, units)").
func (p *Problem) AddConstraints(cs []Constraint) {
	p.Constraints = append(p.Constraints, cs...)
}

// SetObjective assigns (replacing) the problem's objective expression.
func (p *Problem) SetObjective(e Expr) {
	p.Objective = e
}

// Labels returns every constraint's label, in attachment order -- used
// by tests asserting the label-set invariant (spec.md 8).
func (p *Problem) Labels() []string {
	out := make([]string, len(p.Constraints))
	for i, c := range p.Constraints {
		out[i] = c.Label
	}
	return out
}
