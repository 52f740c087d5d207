package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// floatPtr builds an optional reading for pressure and visibility tests.
func floatPtr(v float64) *float64 {
	return &v
}

func TestPressureToInHg(t *testing.T) {
	t.Run("converts readings and drops nulls", func(t *testing.T) {
		input := map[string]*float64{
			"press":     floatPtr(1013.25),
			"sea_level": nil,
		}

		result := PressureToInHg(input)

		assert.Equal(t, map[string]float64{"press": 29.92}, result)
		assert.NotContains(t, result, "sea_level")
	})

	t.Run("multiple readings", func(t *testing.T) {
		input := map[string]*float64{
			"press":      floatPtr(1013.25),
			"grnd_level": floatPtr(900),
		}

		result := PressureToInHg(input)

		assert.Equal(t, map[string]float64{"press": 29.92, "grnd_level": 26.58}, result)
	})

	t.Run("all readings null", func(t *testing.T) {
		input := map[string]*float64{"press": nil, "sea_level": nil}

		result := PressureToInHg(input)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("empty input", func(t *testing.T) {
		result := PressureToInHg(map[string]*float64{})

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
