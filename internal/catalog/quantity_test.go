package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarzaki/boqplan/internal/domain"
)

func TestResolve_LumpSum(t *testing.T) {
	b := &domain.Breakdown{Category: "concrete", TotalQuantity: 350}

	for _, unit := range []string{"LS", "ls", "Ls"} {
		sub := &domain.SubActivity{Code: "X", Unit: unit}
		q, err := DefaultRules().Resolve(b, sub)
		require.NoError(t, err)
		assert.Equal(t, 1.0, q, "unit=%s", unit)
	}
}

func TestResolve_Factors(t *testing.T) {
	b := &domain.Breakdown{Category: "concrete", TotalQuantity: 350}
	rules := DefaultRules()

	cases := []struct {
		unit string
		want float64
	}{
		{"m3", 350},
		{"m2", 420},
		{"ton", 42},
	}
	for _, tc := range cases {
		t.Run(tc.unit, func(t *testing.T) {
			sub := &domain.SubActivity{Code: "X", Unit: tc.unit}
			q, err := rules.Resolve(b, sub)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, q, 1e-9)
		})
	}
}

func TestResolve_UnknownPair(t *testing.T) {
	b := &domain.Breakdown{Category: "concrete", TotalQuantity: 350}
	sub := &domain.SubActivity{Code: "CS-ODD", Unit: "km"}

	_, err := DefaultRules().Resolve(b, sub)
	require.ErrorIs(t, err, domain.ErrUnresolvableQuantity)
	assert.Contains(t, err.Error(), "CS-ODD")
	assert.Contains(t, err.Error(), "km")
}

func TestMerge(t *testing.T) {
	base := QuantityRules{
		{Category: "concrete", Unit: "m3"}: 1.0,
	}
	merged := base.Merge(QuantityRules{
		{Category: "concrete", Unit: "m3"}: 2.0,
		{Category: "roofing", Unit: "m2"}:  1.5,
	})

	assert.Equal(t, 2.0, merged[RuleKey{"concrete", "m3"}])
	assert.Equal(t, 1.5, merged[RuleKey{"roofing", "m2"}])
	assert.Equal(t, 1.0, base[RuleKey{"concrete", "m3"}], "receiver must not change")
}
