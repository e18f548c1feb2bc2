package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarbonFootprint(t *testing.T) {
	tests := []struct {
		name      string
		ef        Value
		power     float64
		expected  float64
		available bool
	}{
		{"factor times power", Avail(0.5), 876000, 438000, true},
		{"small factor", Avail(0.001), 1000, 1, true},
		{"missing EF", Unavailable, 876000, 0, false},
		{"zero power with valid EF", Avail(0.5), 0, 0, false},
		{"zero power and missing EF", Unavailable, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CarbonFootprint(tt.ef, tt.power)
			f, ok := got.Float()
			assert.Equal(t, tt.available, ok)
			if tt.available {
				assert.InDelta(t, tt.expected, f, 1e-9)
			}
		})
	}
}

func TestWaterFootprint(t *testing.T) {
	tests := []struct {
		name      string
		ewif      Value
		water     float64
		power     float64
		expected  float64
		available bool
	}{
		{"water plus embedded power water", Avail(2), 1000, 500, 2000, true},
		{"valid EWIF with zero inputs", Avail(2), 0, 0, 0, true},
		{"missing EWIF falls back to positive water", Unavailable, 1000, 500, 1000, true},
		{"missing EWIF and zero water", Unavailable, 0, 500, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WaterFootprint(tt.ewif, tt.water, tt.power)
			f, ok := got.Float()
			assert.Equal(t, tt.available, ok)
			if tt.available {
				assert.InDelta(t, tt.expected, f, 1e-9)
			}
		})
	}
}

func TestWaterScarcityFootprint(t *testing.T) {
	tests := []struct {
		name      string
		acf       Value
		swi       Value
		water     float64
		power     float64
		expected  float64
		available bool
	}{
		{"both factors present", Avail(1.5), Avail(0.2), 100, 1000, 350, true},
		{"missing ACF contributes zero", Unavailable, Avail(0.2), 100, 1000, 200, true},
		{"missing SWI contributes zero", Avail(1.5), Unavailable, 100, 1000, 150, true},
		{"both missing but water nonzero", Unavailable, Unavailable, 100, 0, 0, true},
		{"both missing but power nonzero", Unavailable, Unavailable, 0, 1000, 0, true},
		{"zero-valued factors with nonzero inputs", Avail(0), Avail(0), 100, 1000, 0, true},
		{"everything zero or missing", Unavailable, Avail(0), 0, 0, 0, false},
		{"all missing and zero inputs", Unavailable, Unavailable, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WaterScarcityFootprint(tt.acf, tt.swi, tt.water, tt.power)
			f, ok := got.Float()
			assert.Equal(t, tt.available, ok)
			if tt.available {
				assert.InDelta(t, tt.expected, f, 1e-9)
			}
		})
	}
}

// The carbon/water formulas treat a missing factor as Unavailable while
// water-scarcity treats it as a zero contribution. The asymmetry is part of
// the contract; this test pins it so nobody "fixes" it for consistency.
func TestMissingFactorPolicyAsymmetry(t *testing.T) {
	assert.False(t, CarbonFootprint(Unavailable, 1000).Valid())
	assert.False(t, WaterFootprint(Unavailable, 0, 1000).Valid())
	assert.True(t, WaterScarcityFootprint(Unavailable, Unavailable, 0, 1000).Valid())
}

func TestComputeMetrics(t *testing.T) {
	f := FactorRecord{
		FIPS: "48001",
		EF:   Avail(0.5),
		EWIF: Avail(2),
		ACF:  Avail(1.5),
		SWI:  Avail(0.2),
	}
	n := NormalizedInput{PowerKWhPerYear: 1000, WaterLitersPerYear: 100}

	m := ComputeMetrics(f, n)

	carbon, ok := m.Carbon.Float()
	require.True(t, ok)
	assert.InDelta(t, 500, carbon, 1e-9)

	water, ok := m.Water.Float()
	require.True(t, ok)
	assert.InDelta(t, 2100, water, 1e-9)

	scarcity, ok := m.WaterScarcity.Float()
	require.True(t, ok)
	assert.InDelta(t, 350, scarcity, 1e-9)
}

func TestComputeMetrics_EmptyFactorRecord(t *testing.T) {
	m := ComputeMetrics(FactorRecord{}, NormalizedInput{PowerKWhPerYear: 1000, WaterLitersPerYear: 100})

	assert.False(t, m.Carbon.Valid())

	water, ok := m.Water.Float()
	require.True(t, ok)
	assert.InDelta(t, 100, water, 1e-9)

	scarcity, ok := m.WaterScarcity.Float()
	require.True(t, ok)
	assert.InDelta(t, 0, scarcity, 1e-9)
}

func TestMetricSelect(t *testing.T) {
	m := CountyMetrics{Carbon: Avail(1), Water: Avail(2), WaterScarcity: Avail(3)}

	assert.Equal(t, Avail(1), MetricCarbon.Select(m))
	assert.Equal(t, Avail(2), MetricWater.Select(m))
	assert.Equal(t, Avail(3), MetricWaterScarcity.Select(m))
	assert.Equal(t, Unavailable, Metric("bogus").Select(m))
}

func TestMetricValid(t *testing.T) {
	for _, m := range Metrics() {
		assert.True(t, m.Valid(), "metric %q", m)
	}
	assert.False(t, Metric("bogus").Valid())
	assert.False(t, Metric("").Valid())
}
