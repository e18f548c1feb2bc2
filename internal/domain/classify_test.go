package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availRange(n int) []Value {
	vs := make([]Value, 0, n)
	for i := 1; i <= n; i++ {
		vs = append(vs, Avail(float64(i*10)))
	}
	return vs
}

func TestComputeThresholds(t *testing.T) {
	// 10, 20, ..., 100: linear interpolation over a uniform grid puts the
	// p-th percentile at exactly 100p.
	th := ComputeThresholds(availRange(10))
	require.True(t, th.Valid)
	assert.InDelta(t, 33, th.P33, 1e-9)
	assert.InDelta(t, 67, th.P67, 1e-9)
}

func TestComputeThresholds_IgnoresUnavailable(t *testing.T) {
	values := append(availRange(10), Unavailable, Unavailable, Unavailable)
	th := ComputeThresholds(values)
	require.True(t, th.Valid)
	assert.InDelta(t, 33, th.P33, 1e-9)
	assert.InDelta(t, 67, th.P67, 1e-9)
}

func TestComputeThresholds_EmptyDomain(t *testing.T) {
	assert.False(t, ComputeThresholds(nil).Valid)
	assert.False(t, ComputeThresholds([]Value{}).Valid)
	assert.False(t, ComputeThresholds([]Value{Unavailable, Unavailable}).Valid)
}

func TestComputeThresholds_SingleValue(t *testing.T) {
	th := ComputeThresholds([]Value{Avail(42)})
	require.True(t, th.Valid)
	assert.InDelta(t, 42, th.P33, 1e-9)
	assert.InDelta(t, 42, th.P67, 1e-9)
}

func TestComputeThresholds_Bounds(t *testing.T) {
	values := []Value{Avail(3), Avail(1), Avail(4), Avail(1), Avail(5), Avail(9), Avail(2), Avail(6)}
	th := ComputeThresholds(values)
	require.True(t, th.Valid)
	assert.LessOrEqual(t, th.P33, th.P67)
	assert.GreaterOrEqual(t, th.P33, 1.0)
	assert.LessOrEqual(t, th.P67, 9.0)
}

func TestClassify(t *testing.T) {
	th := Thresholds{P33: 33, P67: 67, Valid: true}

	tests := []struct {
		name     string
		value    Value
		expected ImpactCategory
	}{
		{"below p33", Avail(10), CategoryLow},
		{"exactly p33", Avail(33), CategoryLow},
		{"between thresholds", Avail(50), CategoryMedium},
		{"exactly p67", Avail(67), CategoryMedium},
		{"above p67", Avail(90), CategoryHigh},
		{"unavailable", Unavailable, CategoryNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.value, th))
		})
	}
}

func TestClassify_InvalidThresholds(t *testing.T) {
	assert.Equal(t, CategoryNoData, Classify(Avail(50), Thresholds{}))
	assert.Equal(t, CategoryNoData, Classify(Unavailable, Thresholds{}))
}

// Increasing a single county's value can only move that county to an equal or
// higher tier, because each order statistic shifts by at most the same delta.
func TestClassify_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		values := make([]Value, 40)
		for i := range values {
			values[i] = Avail(rng.Float64() * 1000)
		}

		idx := rng.Intn(len(values))
		before := Classify(values[idx], ComputeThresholds(values))

		bumped, _ := values[idx].Float()
		values[idx] = Avail(bumped + rng.Float64()*500)
		after := Classify(values[idx], ComputeThresholds(values))

		assert.GreaterOrEqual(t, int(after), int(before),
			"trial %d: tier dropped from %s to %s", trial, before, after)
	}
}

func TestImpactCategory_ColorCodes(t *testing.T) {
	assert.Equal(t, 0, CategoryLow.ColorCode())
	assert.Equal(t, 1, CategoryMedium.ColorCode())
	assert.Equal(t, 2, CategoryHigh.ColorCode())
	assert.Equal(t, 3, CategoryNoData.ColorCode())
}

func TestImpactCategory_String(t *testing.T) {
	assert.Equal(t, "low", CategoryLow.String())
	assert.Equal(t, "medium", CategoryMedium.String())
	assert.Equal(t, "high", CategoryHigh.String())
	assert.Equal(t, "no_data", CategoryNoData.String())
	assert.Equal(t, "unknown", ImpactCategory(99).String())
}

func TestImpactCategory_MarshalJSON(t *testing.T) {
	b, err := CategoryMedium.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"medium"`, string(b))
}
