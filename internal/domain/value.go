package domain

import (
	"encoding/json"
	"math"
)

// Value is an optional float64 that distinguishes "no data" from a numeric
// zero. The distinction is load-bearing for footprint semantics: a county
// with no emission factor is Unavailable, not 0.
type Value struct {
	f  float64
	ok bool
}

// Avail wraps a float64 in an available Value.
func Avail(f float64) Value {
	return Value{f: f, ok: true}
}

// Unavailable is the no-data sentinel.
var Unavailable = Value{}

// Valid reports whether the value carries data.
func (v Value) Valid() bool { return v.ok }

// Float returns the numeric value and whether it is available.
func (v Value) Float() (float64, bool) { return v.f, v.ok }

// Or returns the numeric value, or def when unavailable.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.f
}

// MarshalJSON encodes an available value as a number and an unavailable one
// as null. Non-finite values also encode as null since JSON has no
// representation for them.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok || math.IsNaN(v.f) || math.IsInf(v.f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v.f)
}

// UnmarshalJSON decodes null as Unavailable and a number as available.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Unavailable
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Avail(f)
	return nil
}
