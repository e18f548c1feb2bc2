package domain

import (
	"encoding/json"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ImpactCategory is the percentile-based impact tier for one county. The
// integer values double as the color codes consumed by the rendering
// collaborator's ramp, so the ordering is part of the contract.
type ImpactCategory int

const (
	CategoryLow    ImpactCategory = 0
	CategoryMedium ImpactCategory = 1
	CategoryHigh   ImpactCategory = 2
	CategoryNoData ImpactCategory = 3
)

func (c ImpactCategory) String() string {
	switch c {
	case CategoryLow:
		return "low"
	case CategoryMedium:
		return "medium"
	case CategoryHigh:
		return "high"
	case CategoryNoData:
		return "no_data"
	}
	return "unknown"
}

// ColorCode returns the numeric code for tiered color rendering.
func (c ImpactCategory) ColorCode() int { return int(c) }

// MarshalJSON encodes the category as its string name.
func (c ImpactCategory) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes a category from its string name.
func (c *ImpactCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "low":
		*c = CategoryLow
	case "medium":
		*c = CategoryMedium
	case "high":
		*c = CategoryHigh
	case "no_data":
		*c = CategoryNoData
	default:
		return fmt.Errorf("unknown impact category %q", s)
	}
	return nil
}

// Thresholds holds the 33rd/67th percentile cutoffs for the currently
// selected metric. Valid is false when no county had a numeric value, in
// which case the cutoffs are meaningless and every county is NoData.
type Thresholds struct {
	P33   float64 `json:"p33"`
	P67   float64 `json:"p67"`
	Valid bool    `json:"valid"`
}

// ComputeThresholds estimates the 33rd and 67th percentiles over the numeric
// subset of the given values using linear interpolation. Unavailable entries
// are excluded from the statistic. A full pass over all counties is required
// before any county can be classified.
func ComputeThresholds(values []Value) Thresholds {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := v.Float(); ok {
			xs = append(xs, f)
		}
	}
	if len(xs) == 0 {
		return Thresholds{}
	}
	sort.Float64s(xs)
	return Thresholds{
		P33:   stat.Quantile(0.33, stat.LinInterp, xs, nil),
		P67:   stat.Quantile(0.67, stat.LinInterp, xs, nil),
		Valid: true,
	}
}

// Classify bins a single county's metric value against the thresholds:
// v <= p33 is Low, p33 < v <= p67 is Medium, v > p67 is High. Unavailable
// values, and all values under invalid thresholds, are NoData.
func Classify(v Value, t Thresholds) ImpactCategory {
	f, ok := v.Float()
	if !ok || !t.Valid {
		return CategoryNoData
	}
	switch {
	case f <= t.P33:
		return CategoryLow
	case f <= t.P67:
		return CategoryMedium
	default:
		return CategoryHigh
	}
}
