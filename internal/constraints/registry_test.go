package constraints

import (
	"fmt"
	"testing"
)

func TestApply_TogglesChangeOnlyTheLabelSet(t *testing.T) {
	p := newFixtureProblem(t)
	registry := DefaultRegistry()

	varsBefore := p.Vars
	numCommittedKeysBefore := len(p.Vars.NumCommitted.Keys)

	Apply(p, registry, nil)
	withAll := len(p.Labels())

	p2 := newFixtureProblem(t)
	Apply(p2, registry, map[string]bool{IDRampRateUp: false})
	withoutRamp := len(p2.Labels())

	if withAll == withoutRamp {
		t.Fatalf("disabling a family should shrink the label set: with=%d without=%d", withAll, withoutRamp)
	}

	rampLabels := BuildRampRateUp(p)
	if withAll-withoutRamp != len(rampLabels) {
		t.Fatalf("label-set delta = %d, want exactly the disabled family's %d labels", withAll-withoutRamp, len(rampLabels))
	}

	if p.Vars != varsBefore {
		t.Fatal("Apply must not reassign p.Vars")
	}
	if len(p.Vars.NumCommitted.Keys) != numCommittedKeysBefore {
		t.Fatalf("Apply must not change variable allocation: before=%d after=%d", numCommittedKeysBefore, len(p.Vars.NumCommitted.Keys))
	}
}

func TestApply_RegistryOrderPreserved(t *testing.T) {
	p := newFixtureProblem(t)
	Apply(p, DefaultRegistry(), nil)

	supplyLabel := "supply_eq_demand_(i=0)"
	capacityLabel := "power_lt_capacity_(i=0, u=U1)"

	labels := p.Labels()
	supplyPos, capacityPos := -1, -1
	for i, l := range labels {
		if l == supplyLabel {
			supplyPos = i
		}
		if l == capacityLabel {
			capacityPos = i
		}
	}
	if supplyPos < 0 || capacityPos < 0 {
		t.Fatalf("expected both labels present, got supply=%d capacity=%d", supplyPos, capacityPos)
	}
	if supplyPos > capacityPos {
		t.Errorf("supply==demand (registered first) must precede power<=capacity, got positions %d, %d", supplyPos, capacityPos)
	}
}

func TestFamilyLabels_MatchDeclaredUnitSubset(t *testing.T) {
	p := newFixtureProblem(t)
	labels := BuildNumCommittedLtNumUnits(p)

	want := make(map[string]bool)
	for _, iAny := range p.Sets.Intervals.Indices {
		i := iAny.(int)
		for _, uAny := range p.Sets.UnitsCommit.Indices {
			u := uAny.(string)
			want[fmt.Sprintf("num_committed_lt_num_units_(i=%d, u=%s)", i, u)] = true
		}
	}

	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d", len(labels), len(want))
	}
	for _, c := range labels {
		if !want[c.Label] {
			t.Errorf("unexpected label %q outside intervals x units_commit", c.Label)
		}
	}
}
