// Package services provides the measurement, taxonomy, pricing and document
// logic behind the quotation workflow.
package services

import (
	"math"
	"strconv"
	"strings"
)

// MeasurementUnits returns the list of dimension unit options.
var MeasurementUnits = []string{"ft", "inches", "cm", "m"}

// feetFactors maps a dimension unit to its feet conversion factor.
var feetFactors = map[string]float64{
	"ft":     1,
	"inches": 1.0 / 12.0,
	"cm":     1.0 / 30.48,
	"m":      3.28084,
}

// ToFeet converts a dimension value in the given unit to feet.
// An unknown unit is treated as feet (factor 1).
func ToFeet(value float64, unit string) float64 {
	factor, ok := feetFactors[unit]
	if !ok {
		factor = 1
	}
	return value * factor
}

// Area computes the square-feet area from a length and width in their
// respective units. ok is false when either value is NaN, in which case
// the area must be displayed as absent rather than zero.
func Area(length float64, lengthUnit string, width float64, widthUnit string) (float64, bool) {
	if math.IsNaN(length) || math.IsNaN(width) {
		return 0, false
	}
	return ToFeet(length, lengthUnit) * ToFeet(width, widthUnit), true
}

// ParseDimension parses a raw form value into a dimension.
// ok is false for empty or non-numeric input.
func ParseDimension(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
