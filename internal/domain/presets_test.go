package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	t.Run("catalog values", func(t *testing.T) {
		tests := []struct {
			id       string
			expected ParameterSet
		}{
			{PresetDefault, ParameterSet{Alpha: 0.005, BetaMkt: 1.0, BetaSMB: 0.2, BetaHML: -0.3, RiskFree: 0.02, Noise: 0.02}},
			{PresetLab1, ParameterSet{Alpha: 0.005, BetaMkt: 1.0, BetaSMB: 0.0, BetaHML: 0.0, RiskFree: 0.02, Noise: 0.01}},
			{PresetLab2, ParameterSet{Alpha: -0.003, BetaMkt: 1.2, BetaSMB: 1.0, BetaHML: 1.1, RiskFree: 0.03, Noise: 0.03}},
			{PresetLab3, ParameterSet{Alpha: 0.010, BetaMkt: 0.8, BetaSMB: -0.7, BetaHML: -1.2, RiskFree: 0.01, Noise: 0.05}},
		}
		for _, tc := range tests {
			t.Run(tc.id, func(t *testing.T) {
				preset, ok := PresetByID(tc.id)
				require.True(t, ok)
				require.Equal(t, tc.expected, preset.Params)
				require.NotEmpty(t, preset.Name)
				require.NotEmpty(t, preset.Description)
			})
		}
	})

	t.Run("default preset matches the default parameter set", func(t *testing.T) {
		preset, ok := PresetByID(PresetDefault)
		require.True(t, ok)
		require.Equal(t, DefaultParameterSet(), preset.Params)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := PresetByID("lab4")
		require.False(t, ok)
	})

	t.Run("every preset validates", func(t *testing.T) {
		for _, preset := range Presets() {
			require.NoError(t, preset.Params.Validate())
		}
	})
}

func TestParameterSetValidate(t *testing.T) {
	t.Run("free-form reals are fine", func(t *testing.T) {
		params := ParameterSet{Alpha: -5, BetaMkt: 100, BetaSMB: -100, BetaHML: 3, RiskFree: -0.01, Noise: 2}
		require.NoError(t, params.Validate())
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		params := DefaultParameterSet()
		params.BetaHML = math.NaN()
		require.Error(t, params.Validate())

		params = DefaultParameterSet()
		params.RiskFree = math.Inf(-1)
		require.Error(t, params.Validate())
	})

	t.Run("rejects negative noise", func(t *testing.T) {
		params := DefaultParameterSet()
		params.Noise = -0.01
		require.Error(t, params.Validate())
	})
}

func TestParameterBounds(t *testing.T) {
	bounds := ParameterBounds()
	require.Len(t, bounds, 6)

	byName := map[string]ParameterBound{}
	for _, b := range bounds {
		require.Less(t, b.Min, b.Max)
		require.GreaterOrEqual(t, b.Default, b.Min)
		require.LessOrEqual(t, b.Default, b.Max)
		byName[b.Name] = b
	}

	require.Equal(t, 1.0, byName["betaMkt"].Default)
	require.Equal(t, 0.005, byName["alpha"].Default)
}
