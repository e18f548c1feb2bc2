package domain

// BuildTable produces the full per-county result set: one row per universe
// FIPS, in universe order, regardless of reference or factor coverage.
//
// The join is a left join of the universe against the reference table and
// then the factor table. Counties missing from the reference table keep
// placeholder identity fields; counties missing factors resolve through the
// Unavailable sentinel. Nothing is ever dropped, and no single bad row can
// block the rest of the table.
//
// Computation is two-phase: all footprints are derived first, then the
// percentile thresholds for the selected metric are computed over the whole
// table before any county is classified.
func BuildTable(
	universe []string,
	counties map[string]CountyRecord,
	factors map[string]FactorRecord,
	input NormalizedInput,
	metric Metric,
	notation Notation,
) Table {
	rows := make([]Row, 0, len(universe))
	metricValues := make([]Value, 0, len(universe))

	// Phase one: identity join and footprint derivation.
	for _, fips := range universe {
		row := Row{
			FIPS:       fips,
			CountyName: UnknownCountyName,
			StateName:  UnknownStateName,
			StateAbbr:  UnknownStateAbbr,
		}
		if ref, ok := counties[fips]; ok {
			row.CountyName = ref.CountyName
			row.StateName = ref.StateName
			row.StateAbbr = ref.StateAbbr
		}

		metrics := ComputeMetrics(factors[fips], input)
		row.Carbon = metrics.Carbon
		row.Water = metrics.Water
		row.WaterScarcity = metrics.WaterScarcity

		row.CarbonDisplay = notation.Format(metrics.Carbon)
		row.WaterDisplay = notation.Format(metrics.Water)
		row.WaterScarcityDisplay = notation.Format(metrics.WaterScarcity)

		rows = append(rows, row)
		metricValues = append(metricValues, metric.Select(metrics))
	}

	// Phase two: thresholds over the full table, then classification.
	thresholds := ComputeThresholds(metricValues)
	for i := range rows {
		category := Classify(metricValues[i], thresholds)
		rows[i].Category = category
		rows[i].ColorCode = category.ColorCode()
	}

	return Table{
		Metric:     metric,
		Thresholds: thresholds,
		Rows:       rows,
		ComputedAt: clock.Now(),
	}
}
