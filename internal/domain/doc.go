// Package domain implements the environmental impact computation engine:
// unit normalization, per-county footprint math, percentile-based impact
// tiers, and significant-figure display formatting.
//
// # Reference Data
//
// Three tables arrive from external collaborators and are treated as
// immutable for the lifetime of a session:
//
//	County reference table:  (fips, county_name, state_name, state_abbr)
//	Factor table:            (fips, EWIF, EF, ACF, SWI), sparse coverage
//	County universe:         the complete FIPS id set known to the map renderer
//
// FIPS codes are zero-padded to five characters and join all three tables.
// The universe defines the output row count: every universe id appears in the
// output exactly once, with placeholder identity fields and Unavailable
// metrics when the other tables lack coverage. Counties are never dropped.
//
// # Unit Normalization
//
// User entries normalize to kWh/year (power) and liters/year (water):
//
//	Power:  kwh_per_year x1 | kwh_per_month x12 | kw x8760 | mw x1000x8760
//	Water:  liters_per_year x1 | liters_per_month x12 |
//	        liters_per_second x31,557,600 (365.25-day year) |
//	        gallons_per_minute x525,600 x3.78541 |
//	        gallons_per_month x12 x3.78541
//
// The multipliers are fixed contracts; downstream consumers compare against
// published figures, so they must not be "corrected".
// An unrecognized unit tag is a caller contract violation and returns
// [ErrInvalidUnit]; the engine never substitutes a silent zero.
//
// # Footprint Formulas
//
// Per county, from its factors and the normalized input:
//
//	carbon         = EF x power
//	water          = water + EWIF x power
//	water_scarcity = ACF x water + SWI x power
//
// Missing-data policy differs per formula and the asymmetry is intentional:
// carbon and water treat a missing factor as Unavailable (carbon also when
// power is exactly 0; water falls back to the raw water figure when it is
// positive), while water_scarcity treats a missing ACF or SWI as a zero
// contribution and only goes Unavailable when both factors and both raw
// inputs are zero or missing. See [CarbonFootprint], [WaterFootprint],
// [WaterScarcityFootprint].
//
// # Impact Tiers
//
// For the selected metric, the 33rd and 67th percentiles over the numeric
// values of all counties split the distribution into Low / Medium / High;
// Unavailable values classify as NoData. An empty numeric domain classifies
// everything as NoData without error. Classification requires a full pass
// over all counties first (compute thresholds, then classify), recomputed
// from scratch on every input or metric change.
//
// # Display Formatting
//
// Two three-significant-figure modes: fixed notation (zero renders "0.00")
// and scientific notation equivalent to %.2e (zero renders "0.00e+00").
// Unavailable and non-finite values render as "N/A" rather than failing.
// Formatting never alters the numeric values used for classification.
package domain
