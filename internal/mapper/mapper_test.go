package mapper

import (
	"testing"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_TypeHintWinsOverTitle(t *testing.T) {
	cat, ok := Map("Morning run", "nutrition", domain.ZonePeak)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryNutrition, cat)
}

func TestMap_TypeHintNormalized(t *testing.T) {
	cat, ok := Map("anything", "  Hydration ", domain.ZonePeak)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryHydration, cat)
}

func TestMap_KeywordBeatsZoneFallback(t *testing.T) {
	// "wind down" matches the recovery keyword, so the recovery zone
	// fallback is never consulted.
	cat, ok := Map("Evening Wind Down", "", domain.ZoneRecovery)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryRecovery, cat)
}

func TestMap_KeywordScanOrderIsFixed(t *testing.T) {
	// Title matches both "rest" (recovery) and "walk" (movement); the
	// earlier rule wins.
	cat, ok := Map("Rest then walk", "", domain.ZonePeak)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryRecovery, cat)
}

func TestMap_ZoneFallbacks(t *testing.T) {
	cases := []struct {
		zone domain.ZoneType
		want domain.Category
	}{
		{domain.ZonePeak, domain.CategoryWork},
		{domain.ZoneMaintenance, domain.CategoryHydration},
		{domain.ZoneRecovery, domain.CategoryRecovery},
	}
	for _, tc := range cases {
		cat, ok := Map("xyzzy", "", tc.zone)
		require.True(t, ok, "zone %s", tc.zone)
		assert.Equal(t, tc.want, cat, "zone %s", tc.zone)
	}
}

func TestMap_NothingMatches(t *testing.T) {
	_, ok := Map("xyzzy", "unknown-hint", domain.ZoneType("weird"))
	assert.False(t, ok)
}

func TestMap_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		cat, ok := Map("Walk and call a friend", "", domain.ZoneMaintenance)
		require.True(t, ok)
		assert.Equal(t, domain.CategoryMovement, cat)
	}
}
