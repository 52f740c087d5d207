package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityTo(t *testing.T) {
	t.Run("miles", func(t *testing.T) {
		input := map[string]*float64{"visibility": floatPtr(10000)}

		result, err := VisibilityTo(input, Miles)

		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"visibility": 6.21}, result)
	})

	t.Run("kilometers", func(t *testing.T) {
		input := map[string]*float64{"visibility": floatPtr(10000)}

		result, err := VisibilityTo(input, Kilometers)

		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"visibility": 10.0}, result)
	})

	t.Run("null readings are dropped", func(t *testing.T) {
		input := map[string]*float64{
			"visibility": floatPtr(500),
			"estimated":  nil,
		}

		result, err := VisibilityTo(input, Kilometers)

		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"visibility": 0.5}, result)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := VisibilityTo(map[string]*float64{"visibility": floatPtr(10000)}, DistanceUnit(42))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidUnit)
	})

	t.Run("input is never mutated", func(t *testing.T) {
		reading := floatPtr(10000)
		input := map[string]*float64{"visibility": reading}

		_, err := VisibilityTo(input, Miles)

		require.NoError(t, err)
		assert.Same(t, reading, input["visibility"])
		assert.Equal(t, 10000.0, *input["visibility"])
	})
}
