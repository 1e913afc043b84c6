package data

import (
	"testing"
)

func TestLoadConstraintToggles_AbsentFileReturnsNilNil(t *testing.T) {
	dir := t.TempDir()
	toggles, err := LoadConstraintToggles(dir + "/constraint_list.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggles != nil {
		t.Fatalf("got %v, want nil (every registered family included by default)", toggles)
	}
}

func TestLoadConstraintToggles_ParsesCaseInsensitiveBooleans(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "constraint_list.csv", "ID,ToInclude\nbalance,TRUE\nramping, false \n")

	toggles, err := LoadConstraintToggles(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggles["balance"] {
		t.Errorf("balance: got false, want true")
	}
	if toggles["ramping"] {
		t.Errorf("ramping: got true, want false")
	}
}
