// Package solver implements the in-process branch-and-bound MILP solver
// that plays the role of the "external collaborator" the formulation
// treats as a black box (spec.md 1/7). It is grounded on the retrieved
// jjhbw/GoMILP reference (other_examples/...GoMILP__ilp.go.go): relax
// integrality, solve the LP relaxation with gonum's simplex, and branch
// on the most-fractional integer-constrained column until every
// declared integer/binary variable is integral or the relaxation proves
// infeasible.
package solver

import "time"

// Status is the solver's terminal outcome (spec.md 7.3).
type Status int

const (
	Optimal Status = iota
	Infeasible
	Unbounded
	TimeLimit
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case TimeLimit:
		return "TimeLimit"
	default:
		return "Unknown"
	}
}

// Result is the report handed back after a solve attempt (spec.md 4.6):
// solver status, objective value, wall time. Objective is only
// meaningful when Status == Optimal.
type Result struct {
	Status    Status
	Objective float64
	WallTime  time.Duration
}
