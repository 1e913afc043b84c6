package constraints

import (
	"testing"

	"ucopt/internal/problem"
	"ucopt/internal/uc"
)

// newFixtureProblem builds a small synthetic problem directly in memory
// (bypassing the CSV loaders): two intervals, one thermal commit unit
// (U1), one variable unit (W1), one storage unit (B1). Tests construct
// their own InitialState and traces on top of this as needed.
func newFixtureProblem(t *testing.T) *problem.Problem {
	t.Helper()

	catalog := uc.NewCatalog([]uc.UnitRow{
		{
			Unit:                  "U1",
			Technology:            uc.TechCoal,
			CapacityMW:            100,
			NumUnits:              2,
			FuelCostPerGJ:         2,
			ThermalEfficiencyFrac: 0.36,
			VOMPerMWh:             1,
			MinimumGenerationFrac: 0.2,
			MinimumUpTimeHrs:      3,
			MinimumDownTimeHrs:    3,
			RampRatePctCapPerHr:   1,
		},
		{
			Unit:       "W1",
			Technology: uc.TechWind,
			CapacityMW: 300,
			NumUnits:   1,
			VOMPerMWh:  1,
		},
		{
			Unit:                    "B1",
			Technology:              uc.TechStorage,
			CapacityMW:              100,
			NumUnits:                1,
			StorageHrs:              1,
			RoundTripEfficiencyFrac: 0.8,
		},
	})

	demand := map[int]float64{0: 200, 1: 181}
	variable := map[uc.Technology]map[int]float64{
		uc.TechWind: {0: 1, 1: 0},
	}

	sets, err := uc.CreateSets(demand, catalog, nil)
	if err != nil {
		t.Fatalf("CreateSets: %v", err)
	}
	vars := uc.CreateVariables(sets)

	p := &problem.Problem{
		Name:         "fixture",
		Settings:     uc.Settings{IntervalDurationHrs: 0.5, ValueOfLostLoadPerMWh: 1000},
		Catalog:      catalog,
		Traces:       uc.Traces{Demand: demand, Variable: variable},
		InitialState: uc.NewInitialState(nil),
		Sets:         sets,
		Vars:         vars,
	}
	return p
}

// coefOf sums the coefficients of every term in e referencing v at key,
// since Plus/Minus never collapse duplicate terms.
func coefOf(e problem.Expr, v *uc.Var, key ...any) float64 {
	var total float64
	for _, t := range e.Terms {
		if t.V != v {
			continue
		}
		if len(t.Key) != len(key) {
			continue
		}
		match := true
		for i := range key {
			if t.Key[i] != key[i] {
				match = false
				break
			}
		}
		if match {
			total += t.Coef
		}
	}
	return total
}

func findConstraint(cs []problem.Constraint, label string) (problem.Constraint, bool) {
	for _, c := range cs {
		if c.Label == label {
			return c, true
		}
	}
	return problem.Constraint{}, false
}
