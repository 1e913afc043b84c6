// Package objective builds the minimization objective: fuel, VOM, and
// unserved-energy cost terms summed together, grounded on
// original_source/pyuc/objective_function.py.
package objective

import "ucopt/internal/problem"

// Build assembles the full objective expression and installs it on p,
// matching pyuc's make_objective_function.
func Build(p *problem.Problem) {
	terms := problem.Sum(fuelCostTerm(p), vomCostTerm(p), unservedEnergyCostTerm(p))
	p.SetObjective(terms)
}

// fuelCostTerm charges committed (thermal) units for fuel only, matching
// pyuc's fuel_cost_term / fuel_cost_per_mwh_calculator. The constant 3.6
// converts MWh-thermal to GJ (spec.md 4.5).
func fuelCostTerm(p *problem.Problem) problem.Expr {
	dt := p.Settings.IntervalDurationHrs
	var terms []problem.Expr
	for _, uAny := range p.Sets.UnitsCommit.Indices {
		u := uAny.(string)
		row, _ := p.Catalog.Get(u)
		costPerMWh := 3.6 * row.FuelCostPerGJ / row.ThermalEfficiencyFrac
		for _, iAny := range p.Sets.Intervals.Indices {
			i := iAny.(int)
			terms = append(terms, problem.T(p.Vars.PowerGenerated, dt*costPerMWh, i, u))
		}
	}
	return problem.Sum(terms...)
}

// vomCostTerm applies variable O&M cost to every unit's dispatch,
// regardless of technology (spec.md 4.5), matching pyuc's vom_cost_term.
func vomCostTerm(p *problem.Problem) problem.Expr {
	dt := p.Settings.IntervalDurationHrs
	var terms []problem.Expr
	for _, uAny := range p.Sets.Units.Indices {
		u := uAny.(string)
		row, _ := p.Catalog.Get(u)
		for _, iAny := range p.Sets.Intervals.Indices {
			i := iAny.(int)
			terms = append(terms, problem.T(p.Vars.PowerGenerated, dt*row.VOMPerMWh, i, u))
		}
	}
	return problem.Sum(terms...)
}

// unservedEnergyCostTerm prices the unserved_power slack at VoLL,
// matching pyuc's unserved_energy_cost_term.
func unservedEnergyCostTerm(p *problem.Problem) problem.Expr {
	dt := p.Settings.IntervalDurationHrs
	voll := p.Settings.ValueOfLostLoadPerMWh
	var terms []problem.Expr
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		terms = append(terms, problem.T(p.Vars.UnservedPower, dt*voll, i))
	}
	return problem.Sum(terms...)
}
