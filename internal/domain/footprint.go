package domain

// CarbonFootprint is EF x annual power. Unavailable when the county has no
// emission factor or when annual power is exactly 0; zero consumption means
// "no meaningful footprint", not a numeric zero result.
func CarbonFootprint(ef Value, powerKWhPerYear float64) Value {
	factor, ok := ef.Float()
	if !ok || powerKWhPerYear == 0 {
		return Unavailable
	}
	return Avail(factor * powerKWhPerYear)
}

// WaterFootprint is direct water use plus the water embedded in power
// generation (EWIF x annual power). When EWIF is unavailable the direct water
// figure stands alone if positive; a bare 0 is never emitted.
func WaterFootprint(ewif Value, waterLitersPerYear, powerKWhPerYear float64) Value {
	factor, ok := ewif.Float()
	if !ok {
		if waterLitersPerYear > 0 {
			return Avail(waterLitersPerYear)
		}
		return Unavailable
	}
	return Avail(waterLitersPerYear + factor*powerKWhPerYear)
}

// WaterScarcityFootprint is ACF x annual water plus SWI x annual power, with
// a missing factor contributing zero rather than poisoning the sum. This is
// deliberately looser than the carbon/water missing-data policy and the
// asymmetry is part of the contract. Unavailable only when both factors are
// missing or zero and both raw inputs are exactly 0.
func WaterScarcityFootprint(acf, swi Value, waterLitersPerYear, powerKWhPerYear float64) Value {
	if acf.Or(0) == 0 && swi.Or(0) == 0 && waterLitersPerYear == 0 && powerKWhPerYear == 0 {
		return Unavailable
	}
	return Avail(acf.Or(0)*waterLitersPerYear + swi.Or(0)*powerKWhPerYear)
}

// ComputeMetrics derives all three footprints for one county from its factor
// record and the normalized user input. Pure and deterministic; runs for
// every county on every recomputation.
func ComputeMetrics(f FactorRecord, n NormalizedInput) CountyMetrics {
	return CountyMetrics{
		Carbon:        CarbonFootprint(f.EF, n.PowerKWhPerYear),
		Water:         WaterFootprint(f.EWIF, n.WaterLitersPerYear, n.PowerKWhPerYear),
		WaterScarcity: WaterScarcityFootprint(f.ACF, f.SWI, n.WaterLitersPerYear, n.PowerKWhPerYear),
	}
}

// Metric selects which footprint drives classification and display.
type Metric string

const (
	MetricCarbon        Metric = "carbon"
	MetricWater         Metric = "water"
	MetricWaterScarcity Metric = "water_scarcity"
)

// Metrics lists the selectable footprint metrics.
func Metrics() []Metric {
	return []Metric{MetricCarbon, MetricWater, MetricWaterScarcity}
}

// Valid reports whether m is a known metric tag.
func (m Metric) Valid() bool {
	switch m {
	case MetricCarbon, MetricWater, MetricWaterScarcity:
		return true
	}
	return false
}

// Select returns the footprint value for this metric.
func (m Metric) Select(c CountyMetrics) Value {
	switch m {
	case MetricCarbon:
		return c.Carbon
	case MetricWater:
		return c.Water
	case MetricWaterScarcity:
		return c.WaterScarcity
	}
	return Unavailable
}
