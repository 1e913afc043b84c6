package constraints

import "testing"

// TestBuildStorageEnergyContinuityInitialInterval_ExactArithmetic
// exercises the i=0 boundary recursion: stored_energy[-1]=100,
// power_charged[0]=20, power_generated[0]=5, IntervalDurationHrs=0.5
// should force stored_energy[0] = 100 + 0.5*(20-5) = 107.5.
func TestBuildStorageEnergyContinuityInitialInterval_ExactArithmetic(t *testing.T) {
	p := newFixtureProblem(t)
	p.InitialState.Set("B1", "stored_energy", -1, 100)

	cs := BuildStorageEnergyContinuityInitialInterval(p)
	c, ok := findConstraint(cs, "storage_energy_continuity_(i=0, u=B1)")
	if !ok {
		t.Fatal("missing storage_energy_continuity_(i=0, u=B1)")
	}

	energyCoef := coefOf(c.LHS, p.Vars.StoredEnergy, 0, "B1")
	chargeCoef := coefOf(c.LHS, p.Vars.PowerCharged, 0, "B1")
	genCoef := coefOf(c.LHS, p.Vars.PowerGenerated, 0, "B1")
	if energyCoef != -1 {
		t.Fatalf("stored_energy coefficient = %v, want -1", energyCoef)
	}
	if chargeCoef != 0.5 {
		t.Fatalf("power_charged coefficient = %v, want 0.5 (IntervalDurationHrs)", chargeCoef)
	}
	if genCoef != -0.5 {
		t.Fatalf("power_generated coefficient = %v, want -0.5", genCoef)
	}

	// energyCoef*stored_energy + chargeCoef*20 + genCoef*5 == c.RHS
	// => stored_energy = (c.RHS - chargeCoef*20 - genCoef*5) / energyCoef
	storedEnergy := (c.RHS - chargeCoef*20 - genCoef*5) / energyCoef
	if want := 107.5; storedEnergy != want {
		t.Fatalf("derived stored_energy[0] = %v, want %v", storedEnergy, want)
	}
}

func TestBuildStorageEnergyCapacity_BoundsByHoursAndDuration(t *testing.T) {
	p := newFixtureProblem(t)
	cs := BuildStorageEnergyCapacity(p)
	c, ok := findConstraint(cs, "storage_energy_lt_capacity_(i=0, u=B1)")
	if !ok {
		t.Fatal("missing storage_energy_lt_capacity_(i=0, u=B1)")
	}
	// NumUnits=1, CapacityMW=100, StorageHrs=1, IntervalDurationHrs=0.5
	if want := 1.0 * 100 * 1 * 0.5; c.RHS != want {
		t.Fatalf("capacity bound = %v, want %v", c.RHS, want)
	}
}

func TestBuildStorageEnergyContinuity_NoStorageUnitsYieldsNoConstraints(t *testing.T) {
	p := newFixtureProblem(t)
	p.Sets.UnitsStorage.Indices = nil
	if cs := BuildStorageEnergyContinuity(p); len(cs) != 0 {
		t.Fatalf("expected no continuity constraints with an empty units_storage, got %d", len(cs))
	}
}
