// internal/engine/config_test.go
package engine

import (
	"testing"

	"career-match/internal/common/config"
	"career-match/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.TopN)
	assert.Equal(t, models.CategoryWeights{Skills: 0.5, Values: 0.3, Temperament: 0.2}, cfg.DefaultCategoryWeights)
	assert.Equal(t, 0.15, cfg.DefaultDomainBonus)
	assert.Len(t, cfg.RadarDimensions, 8)
	assert.Equal(t, models.TierWeakMatch, cfg.Tiers[len(cfg.Tiers)-1].Tier)
	assert.Equal(t, models.TierGapToBridge, cfg.GapTier.Tier)
}

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(config.EngineConfig{
		TopN:                   3,
		DefaultCategoryWeights: config.CategoryWeightsConfig{Skills: 0.4, Values: 0.4, Temperament: 0.2},
		Tiers: []config.TierConfig{
			{Tier: "ok", Label: "OK", MinScore: 0},
			{Tier: "great", Label: "Great", MinScore: 0.7},
			{Tier: "gap_to_bridge", Label: "Not yet"},
		},
		RadarDimensions: []config.RadarDimensionConfig{
			{Name: "Technical", Tags: []string{"programming"}},
		},
	})

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, 10, cfg.TopTagCount, "unset values keep the default")
	assert.Equal(t, 0.4, cfg.DefaultCategoryWeights.Values)
	require.Len(t, cfg.Tiers, 2)
	assert.Equal(t, models.Tier("great"), cfg.Tiers[0].Tier)
	assert.Equal(t, "Not yet", cfg.GapTier.Label)
	assert.Equal(t, []models.RadarDimension{{Name: "Technical", Tags: []string{"programming"}}}, cfg.RadarDimensions)
}

func TestConfig_ValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopN = 0
	cfg.MaxComplexityMultiplier = 0.5
	cfg.Tiers = []TierThreshold{
		{Tier: models.TierWeakMatch, MinScore: 0},
		{Tier: models.TierStrongMatch, MinScore: 0.8},
	}
	cfg.RadarDimensions = []models.RadarDimension{{Name: "Empty"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_n must be positive")
	assert.Contains(t, err.Error(), "max_complexity_multiplier must be at least 1")
	assert.Contains(t, err.Error(), "strictly descending")
	assert.Contains(t, err.Error(), "radar dimension Empty")
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.Tiers = nil
	_, err = New(fixtureDataset(t), cfg)
	assert.Error(t, err)
}
