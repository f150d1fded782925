// internal/engine/ranker.go
package engine

import (
	"math"
	"sort"

	"career-match/internal/models"
)

// Ranker orders scored careers and assigns tiers.
type Ranker struct {
	cfg Config
}

func NewRanker(cfg Config) Ranker {
	return Ranker{cfg: cfg}
}

// Rank drops non-positive scores, sorts by descending score keeping input
// order for ties, and returns at most limit matches. limit <= 0 selects
// the configured TopN.
func (r Ranker) Rank(results []MatchResult, limit int) []models.CareerMatch {
	if limit <= 0 {
		limit = r.cfg.TopN
	}

	scored := make([]MatchResult, 0, len(results))
	for _, res := range results {
		if res.TotalScore > 0 {
			scored = append(scored, res)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	matches := make([]models.CareerMatch, 0, len(scored))
	for _, res := range scored {
		tier := r.cfg.tierFor(res.TotalScore)
		matches = append(matches, models.CareerMatch{
			CareerID:        res.Profile.ID,
			Name:            res.Profile.Name,
			Category:        res.Profile.Category,
			Description:     res.Profile.Description,
			CategoryScores:  res.CategoryScores,
			DomainBonus:     res.DomainBonus,
			TotalScore:      res.TotalScore,
			Score:           percent(res.TotalScore),
			Tier:            tier.Tier,
			TierLabel:       tier.Label,
			TierDescription: tier.Description,
			Prerequisites:   res.Prerequisites,
		})
	}
	return matches
}

// Gaps describes disqualified careers with their hypothetical score, highest
// first, all tagged with the gap tier.
func (r Ranker) Gaps(results []MatchResult, knockouts []models.KnockoutResult) []models.CareerGap {
	type entry struct {
		res MatchResult
		ko  models.KnockoutResult
	}
	entries := make([]entry, 0, len(results))
	for i := range results {
		entries = append(entries, entry{res: results[i], ko: knockouts[i]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].res.TotalScore > entries[j].res.TotalScore
	})

	gaps := make([]models.CareerGap, 0, len(entries))
	for _, e := range entries {
		gaps = append(gaps, models.CareerGap{
			CareerID:           e.res.Profile.ID,
			Name:               e.res.Profile.Name,
			Category:           e.res.Profile.Category,
			TotalScore:         e.res.TotalScore,
			Score:              percent(e.res.TotalScore),
			Tier:               r.cfg.GapTier.Tier,
			TierLabel:          r.cfg.GapTier.Label,
			TierDescription:    r.cfg.GapTier.Description,
			GapCount:           len(e.ko.FailedRequirements),
			FailedRequirements: e.ko.FailedRequirements,
		})
	}
	return gaps
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}
