package domain

import "time"

// CountyRecord identifies a county in the external reference table.
// FIPS codes are zero-padded to five characters and act as the join key
// across every table the engine touches.
type CountyRecord struct {
	FIPS       string `json:"fips"`
	CountyName string `json:"county_name"`
	StateName  string `json:"state_name"`
	StateAbbr  string `json:"state_abbr"`
}

// FactorRecord holds the per-county physical factors from the external factor
// table. Coverage is sparse: any field may be Unavailable, and the table need
// not cover every county in the universe.
type FactorRecord struct {
	FIPS string `json:"fips"`
	EF   Value  `json:"ef"`   // emission factor, kg CO2e per kWh
	EWIF Value  `json:"ewif"` // energy-water intensity factor, L per kWh
	ACF  Value  `json:"acf"`  // area water-scarcity consumption factor
	SWI  Value  `json:"swi"`  // scarcity-weighted intensity, per kWh
}

// UserInput is the raw consumption entry supplied by the user, re-supplied on
// every edit. Values are non-negative; units are tags from the declared enums.
type UserInput struct {
	PowerValue float64   `json:"power_value"`
	PowerUnit  PowerUnit `json:"power_unit"`
	WaterValue float64   `json:"water_value"`
	WaterUnit  WaterUnit `json:"water_unit"`
}

// NormalizedInput is UserInput converted to canonical annual units.
type NormalizedInput struct {
	PowerKWhPerYear    float64 `json:"power_kwh_per_year"`
	WaterLitersPerYear float64 `json:"water_liters_per_year"`
}

// CountyMetrics holds the three derived footprints for one county. Each is
// either a real number or Unavailable, never a stand-in zero.
type CountyMetrics struct {
	Carbon        Value `json:"carbon_footprint"`
	Water         Value `json:"water_footprint"`
	WaterScarcity Value `json:"water_scarcity_footprint"`
}

// Placeholder identity fields for counties the reference table does not cover.
const (
	UnknownCountyName = "Unknown County"
	UnknownStateName  = "Unknown State"
	UnknownStateAbbr  = "??"
)

// Row is one output record of the county metrics table, ready for the
// rendering collaborator: identity, raw footprints, formatted strings, and
// the classification for the selected metric.
type Row struct {
	FIPS       string `json:"fips"`
	CountyName string `json:"county_name"`
	StateName  string `json:"state_name"`
	StateAbbr  string `json:"state_abbr"`

	Carbon        Value `json:"carbon_footprint"`
	Water         Value `json:"water_footprint"`
	WaterScarcity Value `json:"water_scarcity_footprint"`

	CarbonDisplay        string `json:"carbon_display"`
	WaterDisplay         string `json:"water_display"`
	WaterScarcityDisplay string `json:"water_scarcity_display"`

	Category  ImpactCategory `json:"category"`
	ColorCode int            `json:"color_code"`
}

// Table is the full per-county result set for one recomputation.
type Table struct {
	Metric     Metric     `json:"metric"`
	Thresholds Thresholds `json:"thresholds"`
	Rows       []Row      `json:"rows"`
	ComputedAt time.Time  `json:"computed_at"`
}
