package solver

import (
	"context"
	"time"

	"ucopt/internal/problem"
)

// Solve hands the assembled problem to the branch-and-bound MILP solver
// and, on an Optimal result, writes each decision variable's optimal
// value back into its uc.Var.Values slice for the result extractor
// (spec.md 4.6). ctx's deadline, if any, is the solver's only
// cancellation/timeout mechanism (spec.md 5).
func Solve(ctx context.Context, p *problem.Problem) (Result, error) {
	start := time.Now()

	m := buildModel(p)
	status, x, obj := branchAndBound(ctx, m)

	result := Result{Status: status, WallTime: time.Since(start)}
	if status != Optimal {
		return result, nil
	}
	result.Objective = obj

	for _, v := range p.Vars.All() {
		base := m.offsets[v]
		for i := range v.Keys {
			v.Values[i] = x[base+i]
		}
	}

	return result, nil
}
