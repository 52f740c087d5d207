package units

import "fmt"

// Temperature conversion constants.
const (
	kelvinOffset     = 273.15
	fahrenheitOffset = 32.0
	fahrenheitScale  = 1.8
)

// KelvinToCelsius converts an absolute temperature to Celsius, rounded to
// two decimal places. Negative Kelvin values are physically impossible and
// return ErrNegativeKelvin.
func KelvinToCelsius(k float64) (float64, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativeKelvin, k)
	}
	return round2(k - kelvinOffset), nil
}

// KelvinToFahrenheit converts an absolute temperature to Fahrenheit,
// rounded to two decimal places. Negative Kelvin values return
// ErrNegativeKelvin.
func KelvinToFahrenheit(k float64) (float64, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativeKelvin, k)
	}
	return round2((k-kelvinOffset)*fahrenheitScale + fahrenheitOffset), nil
}

// KelvinMapTo converts every value in a map of Kelvin temperatures to the
// target unit, returning a new map with the same keys. The Kelvin target
// copies values through unchanged (still into a fresh map, so the result
// never aliases the input). Rounding is applied per value, so converting
// the same input twice yields identical maps.
func KelvinMapTo(temps map[string]float64, unit TemperatureUnit) (map[string]float64, error) {
	switch unit {
	case Kelvin:
		out := make(map[string]float64, len(temps))
		for key, k := range temps {
			out[key] = k
		}
		return out, nil
	case Celsius:
		return convertTemps(temps, KelvinToCelsius)
	case Fahrenheit:
		return convertTemps(temps, KelvinToFahrenheit)
	default:
		return nil, fmt.Errorf("%w: temperature unit %s", ErrInvalidUnit, unit)
	}
}

func convertTemps(temps map[string]float64, conv func(float64) (float64, error)) (map[string]float64, error) {
	out := make(map[string]float64, len(temps))
	for key, k := range temps {
		v, err := conv(k)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}
