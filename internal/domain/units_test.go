package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPower(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     PowerUnit
		expected float64
	}{
		{"annual energy is identity", 1234.5, PowerKWhPerYear, 1234.5},
		{"monthly energy times 12", 100, PowerKWhPerMonth, 1200},
		{"kilowatts times hours per year", 100, PowerKW, 876000},
		{"megawatts times 1000 and hours per year", 1, PowerMW, 8760000},
		{"zero stays zero", 0, PowerKW, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertPower(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestConvertPower_InvalidUnit(t *testing.T) {
	_, err := ConvertPower(1, PowerUnit("furlongs"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.Contains(t, err.Error(), "furlongs")
}

func TestConvertWater(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     WaterUnit
		expected float64
	}{
		{"annual volume is identity", 5000, WaterLitersPerYear, 5000},
		{"monthly volume times 12", 100, WaterLitersPerMonth, 1200},
		{"flow per second over a 365.25-day year", 1, WaterLitersPerSecond, 31557600},
		{"gallons per minute", 1, WaterGallonsPerMinute, 525600 * 3.78541},
		{"monthly gallons", 10, WaterGallonsPerMonth, 10 * 12 * 3.78541},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertWater(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-6)
		})
	}
}

func TestConvertWater_InvalidUnit(t *testing.T) {
	_, err := ConvertWater(1, WaterUnit("hogsheads"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

// Conversions are pure scalings, so converting a scaled value must equal
// scaling the converted canonical value.
func TestConvertPower_ScalesLinearly(t *testing.T) {
	base, err := ConvertPower(1, PowerKWhPerYear)
	require.NoError(t, err)

	monthly, err := ConvertPower(12, PowerKWhPerMonth)
	require.NoError(t, err)
	assert.InDelta(t, base*144, monthly, 1e-9)

	kw, err := ConvertPower(2, PowerKW)
	require.NoError(t, err)
	assert.InDelta(t, 2*8760, kw, 1e-9)
}

func TestNormalizeInput(t *testing.T) {
	n, err := NormalizeInput(UserInput{
		PowerValue: 100, PowerUnit: PowerKW,
		WaterValue: 50, WaterUnit: WaterLitersPerMonth,
	})
	require.NoError(t, err)
	assert.InDelta(t, 876000, n.PowerKWhPerYear, 1e-9)
	assert.InDelta(t, 600, n.WaterLitersPerYear, 1e-9)
}

func TestNormalizeInput_InvalidUnits(t *testing.T) {
	_, err := NormalizeInput(UserInput{PowerUnit: PowerUnit("bad"), WaterUnit: WaterLitersPerYear})
	assert.ErrorIs(t, err, ErrInvalidUnit)

	_, err = NormalizeInput(UserInput{PowerUnit: PowerKW, WaterUnit: WaterUnit("bad")})
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestUnitEnumerations(t *testing.T) {
	assert.Len(t, PowerUnits(), 4)
	assert.Len(t, WaterUnits(), 5)

	for _, u := range PowerUnits() {
		_, err := ConvertPower(1, u)
		assert.NoError(t, err, "unit %q", u)
	}
	for _, u := range WaterUnits() {
		_, err := ConvertWater(1, u)
		assert.NoError(t, err, "unit %q", u)
	}
}
