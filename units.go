package units

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidUnit reports an unrecognized target unit. Returned by the
	// unit parsers and by map converters handed an enum value outside the
	// declared set.
	ErrInvalidUnit = errors.New("invalid target unit")

	// ErrNegativeKelvin reports a Kelvin temperature below absolute zero.
	ErrNegativeKelvin = errors.New("negative Kelvin temperature")
)

// TemperatureUnit selects the output scale for temperature conversion.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
)

// String returns the lowercase unit name used by upstream APIs.
func (u TemperatureUnit) String() string {
	switch u {
	case Kelvin:
		return "kelvin"
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	default:
		return fmt.Sprintf("TemperatureUnit(%d)", int(u))
	}
}

// ParseTemperatureUnit maps the selector strings "kelvin", "celsius", and
// "fahrenheit" to their enum values. This is the single boundary where
// free-text unit names enter the package.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch s {
	case "kelvin":
		return Kelvin, nil
	case "celsius":
		return Celsius, nil
	case "fahrenheit":
		return Fahrenheit, nil
	default:
		return 0, fmt.Errorf("%w: temperature unit %q", ErrInvalidUnit, s)
	}
}

// DistanceUnit selects the output unit for visibility conversion.
type DistanceUnit int

const (
	Miles DistanceUnit = iota
	Kilometers
)

// String returns the lowercase unit name used by upstream APIs.
// Kilometers stringifies as "kms", matching the upstream selector.
func (u DistanceUnit) String() string {
	switch u {
	case Miles:
		return "miles"
	case Kilometers:
		return "kms"
	default:
		return fmt.Sprintf("DistanceUnit(%d)", int(u))
	}
}

// ParseDistanceUnit maps the selector strings "miles" and "kms" to their
// enum values.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch s {
	case "miles":
		return Miles, nil
	case "kms":
		return Kilometers, nil
	default:
		return 0, fmt.Errorf("%w: visibility unit %q", ErrInvalidUnit, s)
	}
}

// round2 rounds to two decimal places, the fixed precision for converted
// temperature, pressure, and visibility values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
