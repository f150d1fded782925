// internal/engine/ranker_test.go
package engine

import (
	"testing"

	"career-match/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(id string, total float64) MatchResult {
	return MatchResult{
		Profile:    models.CareerProfile{ID: id, Name: id},
		TotalScore: total,
	}
}

func TestRanker_FiltersSortsAndTruncates(t *testing.T) {
	r := NewRanker(DefaultConfig())

	matches := r.Rank([]MatchResult{
		scored("zero", 0),
		scored("low", 0.2),
		scored("tie_first", 0.5),
		scored("high", 0.9),
		scored("tie_second", 0.5),
		scored("negative", -0.1),
	}, 0)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.CareerID)
	}
	assert.Equal(t, []string{"high", "tie_first", "tie_second", "low"}, ids)

	limited := r.Rank([]MatchResult{scored("a", 0.3), scored("b", 0.4), scored("c", 0.5)}, 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "c", limited[0].CareerID)
	assert.Equal(t, "b", limited[1].CareerID)
}

func TestRanker_DefaultLimit(t *testing.T) {
	r := NewRanker(DefaultConfig())

	var results []MatchResult
	for i := 0; i < 10; i++ {
		results = append(results, scored(string(rune('a'+i)), 0.5))
	}

	assert.Len(t, r.Rank(results, 0), 6)
	assert.Len(t, r.Rank(results, 20), 10)
	assert.NotNil(t, r.Rank(nil, 0))
}

func TestRanker_Tiers(t *testing.T) {
	r := NewRanker(DefaultConfig())

	tests := []struct {
		score     float64
		wantTier  models.Tier
		wantLabel string
		wantScore int
	}{
		{1.0, models.TierStrongMatch, "Strong Match", 100},
		{0.80, models.TierStrongMatch, "Strong Match", 80},
		{0.7999, models.TierGoodMatch, "Good Match", 80},
		{0.60, models.TierGoodMatch, "Good Match", 60},
		{0.40, models.TierPotentialMatch, "Potential Match", 40},
		{0.399, models.TierWeakMatch, "Weak Match", 40},
		{0.004, models.TierWeakMatch, "Weak Match", 0},
	}

	for _, tt := range tests {
		matches := r.Rank([]MatchResult{scored("x", tt.score)}, 1)
		require.Len(t, matches, 1)
		assert.Equal(t, tt.wantTier, matches[0].Tier, "score %v", tt.score)
		assert.Equal(t, tt.wantLabel, matches[0].TierLabel, "score %v", tt.score)
		assert.Equal(t, tt.wantScore, matches[0].Score, "score %v", tt.score)
		assert.NotEmpty(t, matches[0].TierDescription)
	}
}

func TestRanker_Gaps(t *testing.T) {
	r := NewRanker(DefaultConfig())

	failed := []models.FailedRequirement{
		{Rule: "coding", Description: "Writes code", Actual: models.LevelValue(1), Required: models.LevelValue(3)},
		{Rule: "domain_q", Description: "PhD field requirement not met", Actual: models.DomainValue(models.DomainNone), Required: models.DomainsValue(models.DomainLifeSciences)},
	}
	gaps := r.Gaps(
		[]MatchResult{scored("weak", 0.1), scored("strong", 0.9)},
		[]models.KnockoutResult{
			{FailedRequirements: failed[:1]},
			{FailedRequirements: failed},
		},
	)

	require.Len(t, gaps, 2)
	assert.Equal(t, "strong", gaps[0].CareerID)
	assert.Equal(t, 2, gaps[0].GapCount)
	assert.Equal(t, 90, gaps[0].Score)
	assert.Equal(t, models.TierGapToBridge, gaps[0].Tier)
	assert.Equal(t, "Gap to Bridge", gaps[0].TierLabel)
	assert.Equal(t, "weak", gaps[1].CareerID)
	assert.Equal(t, 1, gaps[1].GapCount)
}
