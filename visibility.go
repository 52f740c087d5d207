package units

import "fmt"

// Visibility distance conversion constants (from meters).
const (
	milesPerMeter = 0.000621371
	kmsPerMeter   = 0.001
)

// VisibilityTo converts every visibility distance in the map from meters
// to the target unit, rounded to two decimal places. Nil readings are
// dropped from the result, mirroring PressureToInHg.
func VisibilityTo(distances map[string]*float64, unit DistanceUnit) (map[string]float64, error) {
	var factor float64
	switch unit {
	case Miles:
		factor = milesPerMeter
	case Kilometers:
		factor = kmsPerMeter
	default:
		return nil, fmt.Errorf("%w: visibility unit %s", ErrInvalidUnit, unit)
	}

	out := make(map[string]float64, len(distances))
	for key, v := range distances {
		if v == nil {
			continue
		}
		out[key] = round2(*v * factor)
	}
	return out, nil
}
