package constraints

import (
	"fmt"

	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// BuildCommitmentContinuity is the state-transition equation for every
// interval after the first (spec.md 4.3), matching
// original_source/pyuc/constraints.py's cnt_commitment_continuity.
func BuildCommitmentContinuity(p *problem.Problem) []problem.Constraint {
	indices := p.Sets.Intervals.Indices
	if len(indices) < 2 {
		return nil
	}
	var out []problem.Constraint
	for _, iAny := range indices[1:] {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			label := fmt.Sprintf("commitment_continuity_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.NumCommitted, 1, i, u).
				Minus(problem.T(p.Vars.NumCommitted, 1, i-1, u)).
				Minus(problem.T(p.Vars.NumStartingUp, 1, i, u)).
				Plus(problem.T(p.Vars.NumShuttingDown, 1, i, u))
			out = append(out, problem.Eq(label, lhs, 0))
		}
	}
	return out
}

// BuildCommitmentContinuityInitialInterval is the i=0 boundary case,
// reading num_committed[-1] from the initial-state table (0 if absent),
// matching cnt_commitment_continuity_initial_interval.
func BuildCommitmentContinuityInitialInterval(p *problem.Problem) []problem.Constraint {
	indices := p.Sets.Intervals.Indices
	if len(indices) == 0 {
		return nil
	}
	i0 := indices[0].(int)

	var out []problem.Constraint
	for _, uAny := range p.Sets.UnitsCommit.Indices {
		u := uAny.(string)
		label := fmt.Sprintf("commitment_continuity_(i=%d, u=%s)", i0, u)
		initialNumCommitted := p.InitialState.Get(u, "num_committed", -1)

		lhs := problem.T(p.Vars.NumCommitted, 1, i0, u).
			Minus(problem.T(p.Vars.NumStartingUp, 1, i0, u)).
			Plus(problem.T(p.Vars.NumShuttingDown, 1, i0, u))
		out = append(out, problem.Eq(label, lhs, initialNumCommitted))
	}
	return out
}

// BuildMinimumUpTime enforces that every unit started within the last
// MinimumUpTimeHrs intervals is still committed now, counting both the
// in-horizon num_starting_up decision variables and the out-of-horizon
// initial-state startup counts (spec.md 4.3: "the sum spans both the
// decision variables for i' >= 0 and the initial-state counts for
// i' < 0"), grounded on
// original_source/pyuc/constraints.py's num_start_ups_within_up_time_calculator
// but, per spec.md, not truncated at the horizon start the way pyuc's
// i_low is -- the initial-state lookback is carried all the way back.
func BuildMinimumUpTime(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	i0 := firstInterval(p)

	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("minimum_up_time_(i=%d, u=%s)", i, u)

			varSum, initSum := lookback(p, p.Vars.NumStartingUp, "num_starting_up", u, i, row.MinimumUpTimeHrs, i0)

			lhs := problem.T(p.Vars.NumCommitted, 1, i, u).Minus(varSum)
			out = append(out, problem.Geq(label, lhs, initSum))
		}
	}
	return out
}

// BuildMinimumDownTime is the symmetric down-time constraint (spec.md
// 4.3), matching cnt_minimum_down_time with the same unrestricted
// initial-state lookback as BuildMinimumUpTime.
func BuildMinimumDownTime(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	i0 := firstInterval(p)

	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("minimum_down_time_(i=%d, u=%s)", i, u)

			varSum, initSum := lookback(p, p.Vars.NumShuttingDown, "num_shutting_down", u, i, row.MinimumDownTimeHrs, i0)

			lhs := problem.K(float64(row.NumUnits)).
				Minus(problem.T(p.Vars.NumCommitted, 1, i, u)).
				Minus(varSum)
			out = append(out, problem.Geq(label, lhs, initSum))
		}
	}
	return out
}

// firstInterval returns the first (lowest) modeled interval, the anchor
// relative to which initial-state columns are negative-indexed.
func firstInterval(p *problem.Problem) int {
	if len(p.Sets.Intervals.Indices) == 0 {
		return 0
	}
	return p.Sets.Intervals.Indices[0].(int)
}

// lookback sums a transition variable (num_starting_up/num_shutting_down)
// over the window [i-window+1, i], splitting the sum into its in-horizon
// variable terms (Expr) and its out-of-horizon initial-state contribution
// (a plain float, looked up at relative interval i'-i0), per spec.md
// 4.3's minimum up/down time formulas.
func lookback(p *problem.Problem, v *uc.Var, varName, unit string, i, window, i0 int) (problem.Expr, float64) {
	var varSum problem.Expr
	var initSum float64

	for ip := i - window + 1; ip <= i; ip++ {
		if ip < i0 {
			initSum += p.InitialState.Get(unit, varName, ip-i0)
			continue
		}
		varSum = varSum.Plus(problem.T(v, 1, ip, unit))
	}
	return varSum, initSum
}
