package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidUnit reports an unrecognized unit tag. Unit tags are a caller
// contract: the input layer validates them before they reach the engine, so
// the converter fails hard instead of silently zeroing a request.
var ErrInvalidUnit = errors.New("invalid unit")

// PowerUnit tags the unit of a user's power consumption entry.
type PowerUnit string

const (
	PowerKWhPerYear  PowerUnit = "kwh_per_year"  // annual energy, canonical
	PowerKWhPerMonth PowerUnit = "kwh_per_month" // monthly energy
	PowerKW          PowerUnit = "kw"            // instantaneous draw, kilowatts
	PowerMW          PowerUnit = "mw"            // instantaneous draw, megawatts
)

// WaterUnit tags the unit of a user's water consumption entry.
type WaterUnit string

const (
	WaterLitersPerYear    WaterUnit = "liters_per_year"    // annual volume, canonical
	WaterLitersPerMonth   WaterUnit = "liters_per_month"   // monthly volume
	WaterLitersPerSecond  WaterUnit = "liters_per_second"  // continuous flow
	WaterGallonsPerMinute WaterUnit = "gallons_per_minute" // continuous flow, gpm
	WaterGallonsPerMonth  WaterUnit = "gallons_per_month"  // monthly volume, gallons
)

// Conversion constants. The deliberately mixed year lengths (8760-hour year
// for power, 365.25-day year for per-second water) are part of the published
// numbers and must not be "corrected".
const (
	MonthsPerYear   = 12
	HoursPerYear    = 8760
	SecondsPerYear  = 31557600 // 365.25-day year
	MinutesPerYear  = 525600
	LitersPerGallon = 3.78541
	KWPerMW         = 1000
)

// PowerUnits lists the accepted power unit tags.
func PowerUnits() []PowerUnit {
	return []PowerUnit{PowerKWhPerYear, PowerKWhPerMonth, PowerKW, PowerMW}
}

// WaterUnits lists the accepted water unit tags.
func WaterUnits() []WaterUnit {
	return []WaterUnit{
		WaterLitersPerYear, WaterLitersPerMonth, WaterLitersPerSecond,
		WaterGallonsPerMinute, WaterGallonsPerMonth,
	}
}

// ConvertPower normalizes a power entry to kWh per year.
func ConvertPower(value float64, unit PowerUnit) (float64, error) {
	switch unit {
	case PowerKWhPerYear:
		return value, nil
	case PowerKWhPerMonth:
		return value * MonthsPerYear, nil
	case PowerKW:
		return value * HoursPerYear, nil
	case PowerMW:
		return value * KWPerMW * HoursPerYear, nil
	default:
		return 0, fmt.Errorf("%w: power unit %q", ErrInvalidUnit, unit)
	}
}

// ConvertWater normalizes a water entry to liters per year.
func ConvertWater(value float64, unit WaterUnit) (float64, error) {
	switch unit {
	case WaterLitersPerYear:
		return value, nil
	case WaterLitersPerMonth:
		return value * MonthsPerYear, nil
	case WaterLitersPerSecond:
		return value * SecondsPerYear, nil
	case WaterGallonsPerMinute:
		return value * MinutesPerYear * LitersPerGallon, nil
	case WaterGallonsPerMonth:
		return value * MonthsPerYear * LitersPerGallon, nil
	default:
		return 0, fmt.Errorf("%w: water unit %q", ErrInvalidUnit, unit)
	}
}

// NormalizeInput converts a raw user entry into canonical annual quantities.
// It is recomputed from scratch whenever the user edits any field.
func NormalizeInput(in UserInput) (NormalizedInput, error) {
	power, err := ConvertPower(in.PowerValue, in.PowerUnit)
	if err != nil {
		return NormalizedInput{}, err
	}
	water, err := ConvertWater(in.WaterValue, in.WaterUnit)
	if err != nil {
		return NormalizedInput{}, err
	}
	return NormalizedInput{
		PowerKWhPerYear:    power,
		WaterLitersPerYear: water,
	}, nil
}
