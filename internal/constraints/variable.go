package constraints

import (
	"fmt"

	"ucopt/internal/problem"
)

// BuildVariableResourceAvailability caps a variable (wind/solar) unit's
// dispatch by its technology's availability trace for the interval
// (spec.md 4.3). If variable_traces.csv was absent, p.Traces.Variable is
// nil and no constraint is produced for any technology -- spec.md 6:
// "Absent file -> no variable-resource constraint emitted".
func BuildVariableResourceAvailability(p *problem.Problem) []problem.Constraint {
	if p.Traces.Variable == nil {
		return nil
	}

	var out []problem.Constraint
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsVariable.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			trace, ok := p.Traces.Variable[row.Technology]
			if !ok {
				continue
			}
			label := fmt.Sprintf("variable_power_lt_resource_availability_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.PowerGenerated, 1, i, u)
			ceiling := trace[i] * float64(row.NumUnits) * row.CapacityMW
			out = append(out, problem.Leq(label, lhs, ceiling))
		}
	}
	return out
}
