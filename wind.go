package units

// Wind speed conversion constants (from meters per second).
const (
	mphPerMeterPerSec   = 2.23694
	kmhPerMeterPerSec   = 3.6
	knotsPerMeterPerSec = 1.94384
)

// passthroughKeys lists map keys whose values are not wind speeds and must
// be copied through unconverted. "deg" holds the wind bearing in compass
// degrees.
var passthroughKeys = map[string]struct{}{
	"deg": {},
}

// beaufortBounds holds the inclusive upper bound of each Beaufort level
// 0-11 in meters per second. Speeds above the last bound are level 12.
var beaufortBounds = [...]float64{0.2, 1.5, 3.3, 5.4, 7.9, 10.7, 13.8, 17.1, 20.7, 24.4, 28.4, 32.6}

// WindToImperial converts every wind speed in the map from meters per
// second to miles per hour. Pass-through keys keep their value; nothing
// is rounded.
func WindToImperial(wind map[string]float64) map[string]float64 {
	return scaleWind(wind, mphPerMeterPerSec)
}

// WindToKmh converts every wind speed in the map from meters per second
// to kilometers per hour.
func WindToKmh(wind map[string]float64) map[string]float64 {
	return scaleWind(wind, kmhPerMeterPerSec)
}

// WindToKnots converts every wind speed in the map from meters per second
// to knots.
func WindToKnots(wind map[string]float64) map[string]float64 {
	return scaleWind(wind, knotsPerMeterPerSec)
}

func scaleWind(wind map[string]float64, factor float64) map[string]float64 {
	out := make(map[string]float64, len(wind))
	for key, v := range wind {
		if _, skip := passthroughKeys[key]; skip {
			out[key] = v
			continue
		}
		out[key] = v * factor
	}
	return out
}

// BeaufortLevel classifies a wind speed in meters per second into its
// Beaufort force level 0-12. Boundary speeds belong to the lower level.
func BeaufortLevel(speed float64) int {
	for level, bound := range beaufortBounds {
		if speed <= bound {
			return level
		}
	}
	return len(beaufortBounds)
}

// WindToBeaufort converts every wind speed in the map from meters per
// second to its Beaufort level. Levels are whole numbers stored as
// float64 so pass-through keys keep their exact value.
func WindToBeaufort(wind map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(wind))
	for key, v := range wind {
		if _, skip := passthroughKeys[key]; skip {
			out[key] = v
			continue
		}
		out[key] = float64(BeaufortLevel(v))
	}
	return out
}
