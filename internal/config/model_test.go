package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	t.Parallel()

	m := NewModel()
	require.NoError(t, m.Validate())
	assert.Equal(t, Limits{
		MaxPackageWeight: 100,
		MaxThings:        15,
		MaxThingWeight:   100,
		MaxThingCost:     100,
	}, m.Limits)
	assert.Empty(t, m.Solver)
}

func TestModel_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mutate    func(m *Model)
		errSubstr []string
	}{
		{
			name:   "branch and bound solver",
			mutate: func(m *Model) { m.Solver = SolverBranchAndBound },
		},
		{
			name:      "unknown solver",
			mutate:    func(m *Model) { m.Solver = "greedy" },
			errSubstr: []string{`unknown solver "greedy"`},
		},
		{
			name:      "max things above ceiling",
			mutate:    func(m *Model) { m.Limits.MaxThings = MaxThingsCeiling + 1 },
			errSubstr: []string{"max_things must be between 1 and 24, got 25"},
		},
		{
			name: "several bad limits are all reported",
			mutate: func(m *Model) {
				m.Limits.MaxPackageWeight = 0
				m.Limits.MaxThingCost = -1
			},
			errSubstr: []string{"max_package_weight must be positive", "max_thing_cost must be positive"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := NewModel()
			tc.mutate(m)
			err := m.Validate()
			if len(tc.errSubstr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, s := range tc.errSubstr {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}
