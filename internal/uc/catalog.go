package uc

// Technology names a unit's generating technology, used to derive subset
// membership (spec.md 3).
type Technology string

const (
	TechCoal    Technology = "Coal"
	TechCCGT    Technology = "CCGT"
	TechOCGT    Technology = "OCGT"
	TechNuclear Technology = "Nuclear"
	TechWind    Technology = "Wind"
	TechSolar   Technology = "Solar"
	TechStorage Technology = "Storage"
)

// CommitTechnologies are thermal technologies with binary commitment
// decisions (units_commit).
var CommitTechnologies = []Technology{TechCoal, TechCCGT, TechOCGT, TechNuclear}

// VariableTechnologies are resources bound by a per-technology
// availability trace (units_variable).
var VariableTechnologies = []Technology{TechWind, TechSolar}

// StorageTechnologies are technologies with energy state and charging
// (units_storage).
var StorageTechnologies = []Technology{TechStorage}

// UnitRow is one row of the unit catalog (spec.md 3). Missing CSV values
// default to their Go zero value, matching pyuc's fillna(0).
type UnitRow struct {
	Unit                    string     `json:"unit"`
	Technology              Technology `json:"technology"`
	CapacityMW              float64    `json:"capacity_mw"`
	NumUnits                int        `json:"num_units"`
	FuelCostPerGJ           float64    `json:"fuel_cost_per_gj"`
	ThermalEfficiencyFrac   float64    `json:"thermal_efficiency_frac"`
	VOMPerMWh               float64    `json:"vom_per_mwh"`
	MinimumGenerationFrac   float64    `json:"minimum_generation_frac"`
	MinimumUpTimeHrs        int        `json:"minimum_up_time_hrs"`
	MinimumDownTimeHrs      int        `json:"minimum_down_time_hrs"`
	RampRatePctCapPerHr     float64    `json:"ramp_rate_pct_cap_per_hr"`
	StorageHrs              float64    `json:"storage_hrs"`
	RoundTripEfficiencyFrac float64    `json:"round_trip_efficiency_frac"`
}

// IsCommit reports whether the row's technology belongs to units_commit.
func (u UnitRow) IsCommit() bool { return techIn(u.Technology, CommitTechnologies) }

// IsVariable reports whether the row's technology belongs to
// units_variable.
func (u UnitRow) IsVariable() bool { return techIn(u.Technology, VariableTechnologies) }

// IsStorage reports whether the row's technology belongs to
// units_storage.
func (u UnitRow) IsStorage() bool { return techIn(u.Technology, StorageTechnologies) }

func techIn(t Technology, list []Technology) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

// Catalog is the full unit catalog, keyed by Unit (spec.md 3: "Missing
// values default to 0"; "duplicate unit key is a data-consistency
// error" per SPEC_FULL.md 3).
type Catalog struct {
	Rows  []UnitRow
	byUnit map[string]*UnitRow
}

// NewCatalog builds a Catalog from rows, indexing them by Unit.
func NewCatalog(rows []UnitRow) *Catalog {
	c := &Catalog{Rows: rows, byUnit: make(map[string]*UnitRow, len(rows))}
	for i := range c.Rows {
		c.byUnit[c.Rows[i].Unit] = &c.Rows[i]
	}
	return c
}

// Get returns the row for unit, and whether it was found.
func (c *Catalog) Get(unit string) (UnitRow, bool) {
	r, ok := c.byUnit[unit]
	if !ok {
		return UnitRow{}, false
	}
	return *r, true
}

// RampOnline, RampStartup, RampShutdown, MinGen derive the linearized
// ramp capacities described in spec.md 4.3.
func (u UnitRow) RampOnline() float64 {
	return u.RampRatePctCapPerHr * u.CapacityMW
}

func (u UnitRow) RampStartup() float64 {
	rate := u.RampRatePctCapPerHr
	if u.MinimumGenerationFrac > rate {
		rate = u.MinimumGenerationFrac
	}
	return rate * u.CapacityMW
}

func (u UnitRow) RampShutdown() float64 {
	return u.RampStartup()
}

func (u UnitRow) MinGenMW() float64 {
	return u.MinimumGenerationFrac * u.CapacityMW
}
