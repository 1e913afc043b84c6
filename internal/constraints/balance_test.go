package constraints

import "testing"

// TestBuildSupplyEqDemand_StorageChargingGrossedUpByEfficiency exercises
// the exact arithmetic of the supply balance when storage is charging:
// power_charged[0,B1]=10 at 80% round-trip efficiency, with every
// unit's power_generated at 0, against demand=200, should force
// unserved_power[0] = 200 + 10/0.8 = 212.5.
func TestBuildSupplyEqDemand_StorageChargingGrossedUpByEfficiency(t *testing.T) {
	p := newFixtureProblem(t)
	cs := BuildSupplyEqDemand(p)
	c, ok := findConstraint(cs, "supply_eq_demand_(i=0)")
	if !ok {
		t.Fatal("missing supply_eq_demand_(i=0)")
	}

	unservedCoef := coefOf(c.LHS, p.Vars.UnservedPower, 0)
	if unservedCoef != 1 {
		t.Fatalf("unserved_power coefficient = %v, want 1", unservedCoef)
	}
	chargeCoef := coefOf(c.LHS, p.Vars.PowerCharged, 0, "B1")
	if want := -1 / 0.8; chargeCoef != want {
		t.Fatalf("power_charged coefficient = %v, want %v", chargeCoef, want)
	}
	for _, u := range []string{"U1", "W1", "B1"} {
		if got := coefOf(c.LHS, p.Vars.PowerGenerated, 0, u); got != 1 {
			t.Errorf("power_generated[%s] coefficient = %v, want 1", u, got)
		}
	}
	if c.RHS != 200 {
		t.Fatalf("RHS = %v, want 200 (demand)", c.RHS)
	}

	// With every power_generated held at 0 and power_charged[B1]=10, the
	// equation collapses to unserved_power[0] = RHS + 10/0.8.
	unserved := c.RHS - chargeCoef*10
	if want := 212.5; unserved != want {
		t.Fatalf("derived unserved_power = %v, want %v", unserved, want)
	}
}

func TestBuildPowerLtCommittedCapacity_UnitsVariableExcluded(t *testing.T) {
	p := newFixtureProblem(t)
	cs := BuildPowerLtCommittedCapacity(p)
	for _, c := range cs {
		if c.Label == "power_lt_committed_capacity_(i=0, u=W1)" {
			t.Fatal("power<=committed_capacity must not apply to units_variable")
		}
	}
	if _, ok := findConstraint(cs, "power_lt_committed_capacity_(i=0, u=U1)"); !ok {
		t.Fatal("expected a committed-capacity constraint for the commit unit")
	}
}

func TestBuildPowerLtCapacity_AppliesToEveryUnit(t *testing.T) {
	p := newFixtureProblem(t)
	cs := BuildPowerLtCapacity(p)
	want := len(p.Sets.Intervals.Indices) * len(p.Sets.Units.Indices)
	if len(cs) != want {
		t.Fatalf("got %d constraints, want %d (intervals x units)", len(cs), want)
	}
}
