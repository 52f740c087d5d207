package units

// hPa per inch of mercury.
const hpaPerInHg = 33.8639

// PressureToInHg converts every barometric pressure in the map from
// hectopascals to inches of mercury, rounded to two decimal places.
// Nil readings (sensors that reported null, e.g. a missing "sea_level")
// are dropped from the result, so the output may have fewer keys than
// the input.
func PressureToInHg(pressures map[string]*float64) map[string]float64 {
	out := make(map[string]float64, len(pressures))
	for key, v := range pressures {
		if v == nil {
			continue
		}
		out[key] = round2(*v / hpaPerInHg)
	}
	return out
}
