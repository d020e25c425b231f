package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/domain/helper"
)

func TestNewAchievementCatalog(t *testing.T) {
	c, err := NewAchievementCatalog()
	require.NoError(t, err)

	all := c.All()
	require.NotEmpty(t, all)

	t.Run("every entry is well formed", func(t *testing.T) {
		for _, a := range all {
			assert.NotEmpty(t, a.ID)
			assert.NotEmpty(t, a.Name)
			assert.Positive(t, a.Threshold)
			assert.Contains(t, []string{helper.MetricSessions, helper.MetricKudos}, a.Metric)
		}
	})

	t.Run("lookup by ID", func(t *testing.T) {
		first, ok := c.Get("ach_first_step")
		require.True(t, ok)
		assert.Equal(t, helper.MetricSessions, first.Metric)
		assert.Equal(t, 1, first.Threshold)

		_, ok = c.Get("ach_unknown")
		assert.False(t, ok)
	})

	t.Run("display names match the published catalog", func(t *testing.T) {
		expected := map[string]string{
			"ach_first_step":       "First Step",
			"ach_five_a_day":       "Helping Hand",
			"ach_community_pillar": "Community Pillar",
			"ach_first_kudos":      "Heartfelt Thanks",
			"ach_trusted_voice":    "Trusted Voice",
		}
		for id, name := range expected {
			a, ok := c.Get(id)
			require.True(t, ok, id)
			assert.Equal(t, name, a.Name)
		}
	})

	t.Run("All returns a copy", func(t *testing.T) {
		mutated := c.All()
		mutated[0].ID = "ach_tampered"

		fresh := c.All()
		assert.NotEqual(t, "ach_tampered", fresh[0].ID)
	})
}
