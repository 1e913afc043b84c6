package constraints

import (
	"fmt"

	"ucopt/internal/problem"
)

// BuildStorageChargeCeiling caps charging withdrawal by the fleet's
// efficiency-derated capacity (spec.md 4.3).
func BuildStorageChargeCeiling(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsStorage.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("storage_charge_lt_ceiling_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.PowerCharged, 1, i, u)
			out = append(out, problem.Leq(label, lhs, float64(row.NumUnits)*row.CapacityMW*row.RoundTripEfficiencyFrac))
		}
	}
	return out
}

// BuildStorageEnergyContinuity is the energy-balance recursion for every
// interval after the first (spec.md 4.3): charging fills, discharging
// empties, and conversion losses are accounted for in the supply
// balance, not here.
func BuildStorageEnergyContinuity(p *problem.Problem) []problem.Constraint {
	indices := p.Sets.Intervals.Indices
	if len(indices) < 2 {
		return nil
	}
	dt := p.Settings.IntervalDurationHrs

	var out []problem.Constraint
	for _, iAny := range indices[1:] {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsStorage.Indices {
			u := uAny.(string)
			label := fmt.Sprintf("storage_energy_continuity_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.StoredEnergy, 1, i-1, u).
				Minus(problem.T(p.Vars.StoredEnergy, 1, i, u)).
				Plus(problem.T(p.Vars.PowerCharged, dt, i, u)).
				Minus(problem.T(p.Vars.PowerGenerated, dt, i, u))
			out = append(out, problem.Eq(label, lhs, 0))
		}
	}
	return out
}

// BuildStorageEnergyContinuityInitialInterval is the i=0 boundary case,
// reading stored_energy[-1] from the initial-state table (0 if absent).
func BuildStorageEnergyContinuityInitialInterval(p *problem.Problem) []problem.Constraint {
	indices := p.Sets.Intervals.Indices
	if len(indices) == 0 {
		return nil
	}
	i0 := indices[0].(int)
	dt := p.Settings.IntervalDurationHrs

	var out []problem.Constraint
	for _, uAny := range p.Sets.UnitsStorage.Indices {
		u := uAny.(string)
		label := fmt.Sprintf("storage_energy_continuity_(i=%d, u=%s)", i0, u)
		priorEnergy := p.InitialState.Get(u, "stored_energy", -1)

		lhs := problem.T(p.Vars.StoredEnergy, -1, i0, u).
			Plus(problem.T(p.Vars.PowerCharged, dt, i0, u)).
			Minus(problem.T(p.Vars.PowerGenerated, dt, i0, u))
		out = append(out, problem.Eq(label, lhs, -priorEnergy))
	}
	return out
}

// BuildStorageEnergyCapacity caps stored energy by the fleet's rated
// capacity, storage-hours, and interval duration (spec.md 4.3 / 9: the
// interval-duration scaling is deliberate per spec, not a bug, and is
// implemented as specified).
func BuildStorageEnergyCapacity(p *problem.Problem) []problem.Constraint {
	var out []problem.Constraint
	dt := p.Settings.IntervalDurationHrs
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsStorage.Indices {
			u := uAny.(string)
			row, _ := p.Catalog.Get(u)
			label := fmt.Sprintf("storage_energy_lt_capacity_(i=%d, u=%s)", i, u)
			lhs := problem.T(p.Vars.StoredEnergy, 1, i, u)
			cap := float64(row.NumUnits) * row.CapacityMW * row.StorageHrs * dt
			out = append(out, problem.Leq(label, lhs, cap))
		}
	}
	return out
}
