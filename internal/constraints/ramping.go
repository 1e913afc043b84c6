package constraints

import (
	"fmt"

	"ucopt/internal/problem"
)

// BuildRampRateUp is the linearized ramp-up limit across start/stop
// transitions (spec.md 4.3), newly formulated here -- the retrieved
// original_source/pyuc/constraints.py predates ramp constraints, so this
// is built directly from spec.md's algebra rather than adapted from a
// pyuc function, following the same label/loop idiom as its siblings.
func BuildRampRateUp(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	i0 := firstInterval(p)

	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("ramp_rate_up_(i=%d, u=%s)", i, u)

			deltaP := powerDelta(p, u, i, i0)
			rhs := problem.T(p.Vars.NumCommitted, row.RampOnline(), i, u).
				Minus(problem.T(p.Vars.NumStartingUp, row.RampOnline(), i, u)).
				Plus(problem.T(p.Vars.NumStartingUp, row.RampStartup(), i, u)).
				Minus(problem.T(p.Vars.NumShuttingDown, row.MinGenMW(), i, u))

			out = append(out, problem.NewConstraint(label, deltaP, problem.LE, rhs))
		}
	}
	return out
}

// BuildRampRateDown is the symmetric ramp-down limit (spec.md 4.3).
func BuildRampRateDown(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	i0 := firstInterval(p)

	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("ramp_rate_down_(i=%d, u=%s)", i, u)

			deltaP := powerDelta(p, u, i, i0).Scale(-1)
			rhs := problem.T(p.Vars.NumCommitted, row.RampOnline(), i, u).
				Minus(problem.T(p.Vars.NumStartingUp, row.RampOnline(), i, u)).
				Plus(problem.T(p.Vars.NumShuttingDown, row.RampShutdown(), i, u)).
				Minus(problem.T(p.Vars.NumStartingUp, row.MinGenMW(), i, u))

			out = append(out, problem.NewConstraint(label, deltaP, problem.LE, rhs))
		}
	}
	return out
}

// powerDelta returns power_generated[i,u] - power_generated[i-1,u],
// using the initial-state (power_generated,-1) column (0 if absent) at
// the first modeled interval.
func powerDelta(p *problem.Problem, u string, i, i0 int) problem.Expr {
	if i == i0 {
		prior := p.InitialState.Get(u, "power_generated", -1)
		return problem.T(p.Vars.PowerGenerated, 1, i, u).PlusConst(-prior)
	}
	return problem.T(p.Vars.PowerGenerated, 1, i, u).Minus(problem.T(p.Vars.PowerGenerated, 1, i-1, u))
}
