package constraints

import (
	"fmt"

	"ucopt/internal/problem"
)

// BuildSupplyEqDemand is the supply=demand balance (spec.md 4.3), with
// storage charging withdrawal grossed up by round-trip efficiency so
// conversion losses hit the balance, matching
// original_source/pyuc/constraints.py's cnt_supply_eq_demand extended
// with the storage term spec.md adds.
func BuildSupplyEqDemand(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	units := p.Sets.Units.Indices
	storage := p.Sets.UnitsStorage.Indices

	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		label := fmt.Sprintf("supply_eq_demand_(i=%d)", i)

		lhsTerms := make([]problem.Expr, 0, len(units)+1)
		for _, u := range units {
			lhsTerms = append(lhsTerms, problem.T(p.Vars.PowerGenerated, 1, i, u))
		}
		lhsTerms = append(lhsTerms, problem.T(p.Vars.UnservedPower, 1, i))
		lhs := problem.Sum(lhsTerms...)

		rhsTerms := make([]problem.Expr, 0, len(storage)+1)
		rhsTerms = append(rhsTerms, problem.K(p.Traces.Demand[i]))
		for _, u := range storage {
			row, _ := p.Catalog.Get(u.(string))
			rhsTerms = append(rhsTerms, problem.T(p.Vars.PowerCharged, 1/row.RoundTripEfficiencyFrac, i, u))
		}
		rhs := problem.Sum(rhsTerms...)

		out = append(out, problem.NewConstraint(label, lhs, problem.EQ, rhs))
	}
	return out
}

// BuildPowerLtCapacity is the fleet-capacity ceiling, for every unit
// (spec.md 4.3), matching cnt_power_lt_capacity.
func BuildPowerLtCapacity(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.Units.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("power_lt_capacity_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.PowerGenerated, 1, i, u)
			out = append(out, problem.Leq(label, lhs, row.CapacityMW*float64(row.NumUnits)))
		}
	}
	return out
}

// BuildPowerLtCommittedCapacity caps dispatch by committed fleet count,
// for units_commit only (spec.md 4.3), matching
// cnt_power_lt_committed_capacity.
func BuildPowerLtCommittedCapacity(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("power_lt_committed_capacity_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.PowerGenerated, 1, i, u).Minus(
				problem.T(p.Vars.NumCommitted, row.CapacityMW, i, u))
			out = append(out, problem.Leq(label, lhs, 0))
		}
	}
	return out
}

// BuildPowerGtMinimumGeneration enforces committed units run at or above
// their technical minimum (spec.md 4.3), matching
// cnt_power_gt_minimum_generation.
func BuildPowerGtMinimumGeneration(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("power_gt_minimum_generation_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.PowerGenerated, 1, i, u).Minus(
				problem.T(p.Vars.NumCommitted, row.CapacityMW*row.MinimumGenerationFrac, i, u))
			out = append(out, problem.Geq(label, lhs, 0))
		}
	}
	return out
}

// BuildNumCommittedLtNumUnits caps the committed fleet count at the
// catalog's NumUnits (spec.md 4.3), matching
// cnt_num_committed_lt_num_units.
func BuildNumCommittedLtNumUnits(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("num_committed_lt_num_units_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.NumCommitted, 1, i, u)
			out = append(out, problem.Leq(label, lhs, float64(row.NumUnits)))
		}
	}
	return out
}
