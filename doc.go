// Package units converts meteorological measurements between unit systems.
//
// # Canonical Units
//
// Weather APIs in the OpenWeatherMap family report observations in a fixed
// set of metric units regardless of locale. Those are the canonical input
// units for every converter in this package:
//
//	temperature  Kelvin
//	wind speed   meters per second
//	pressure     hectopascals (hPa)
//	visibility   meters
//
// Measurements arrive as flat string-keyed maps mirroring the JSON objects
// produced by such APIs, e.g. a wind object {"speed": 4.1, "gust": 7.0,
// "deg": 270} or a pressure object {"press": 1013.25, "sea_level": null}.
// Converters keep the keys and transform the values.
//
// # Map Conventions
//
// Every converter returns a freshly allocated map and never mutates its
// input, so results are safe to modify and inputs are safe to share across
// goroutines.
//
// The "deg" key holds a wind bearing in compass degrees, not a speed. Wind
// converters copy it through unchanged; see [WindToImperial] and friends.
//
// Pressure and visibility readings may be absent (a JSON null from the
// upstream API). Absent readings are modeled as nil pointers and are
// dropped from the result map entirely rather than converted or zeroed.
//
// # Conversion Factors
//
//	1 m/s  = 2.23694 mph
//	1 m/s  = 3.6 km/h
//	1 m/s  = 1.94384 knots
//	1 inHg = 33.8639 hPa
//	1 m    = 0.000621371 miles
//
// Temperature, pressure, and visibility results are rounded to two decimal
// places per value. Wind speed results are not rounded.
//
// # Beaufort Scale
//
// [BeaufortLevel] classifies a wind speed into the 13-level (0-12)
// empirical Beaufort force scale using the interval table published at
// https://www.windfinder.com/wind/windspeed.htm. Intervals are closed on
// the right: a speed exactly on a boundary belongs to the lower level
// (0.2 m/s is level 0, not 1). Level 12 (hurricane force) is unbounded
// above.
//
// # One-Way Conversions
//
// Converters are single-application: they assume canonical-unit input and
// are not self-inverse. Re-applying a converter to its own output scales
// already-converted values again. The only exception is [KelvinMapTo] with
// the [Kelvin] target, which copies values through unchanged.
package units
