// internal/engine/scorer.go
package engine

import (
	"math"

	"career-match/internal/dataset"
	"career-match/internal/models"
)

// MatchResult is the score of one career before tiering.
type MatchResult struct {
	Profile        models.CareerProfile
	CategoryScores models.CategoryScores
	DomainBonus    float64
	TotalScore     float64
	Prerequisites  []string
}

// CareerScorer scores a career profile against a tag vector.
type CareerScorer struct {
	ds  *dataset.Dataset
	cfg Config
}

func NewCareerScorer(ds *dataset.Dataset, cfg Config) CareerScorer {
	return CareerScorer{ds: ds, cfg: cfg}
}

// CategoryWeights resolves the weights for a career category, falling back
// to the configured default.
func (s CareerScorer) CategoryWeights(category string) models.CategoryWeights {
	if w, ok := s.ds.CategoryWeights(category); ok {
		return w
	}
	return s.cfg.DefaultCategoryWeights
}

// DomainBonus is the extra fraction applied when the user's domain qualifies
// for the career's domain expertise.
func (s CareerScorer) DomainBonus(profile models.CareerProfile, domain models.Domain) float64 {
	if domain == models.DomainNone || !expertiseMatches(profile.DomainExpertise, domain) {
		return 0
	}
	if m, ok := s.ds.DomainBonusMultiplier(domain); ok {
		return m - 1
	}
	return s.cfg.DefaultDomainBonus
}

// Score computes the category scores and final score of one career. Every
// listed tag counts in its category's denominator, matched or not.
func (s CareerScorer) Score(profile models.CareerProfile, vector TagVector, domain models.Domain) MatchResult {
	maxTagValue := vector.Max()

	scores := models.CategoryScores{
		Skills:      clamp01(s.skillScore(profile.Skills, vector, maxTagValue)),
		Values:      clamp01(averageTagScore(profile.Values, vector, maxTagValue)),
		Temperament: clamp01(averageTagScore(profile.Temperament, vector, maxTagValue)),
	}

	weights := s.CategoryWeights(profile.Category)
	total := scores.Skills*weights.Skills + scores.Values*weights.Values + scores.Temperament*weights.Temperament
	bonus := s.DomainBonus(profile, domain)

	return MatchResult{
		Profile:        profile,
		CategoryScores: scores,
		DomainBonus:    bonus,
		TotalScore:     clamp01(total * (1 + bonus)),
	}
}

func (s CareerScorer) skillScore(skills models.SkillSet, vector TagVector, maxTagValue float64) float64 {
	if len(skills.Required) == 0 {
		return 0
	}
	sum := 0.0
	for _, skill := range skills.Required {
		w, ok := vector[skill]
		if !ok {
			continue
		}
		sum += (w / maxTagValue) * s.complexityMultiplier(skills.ComplexityLevels[skill])
	}
	return sum / float64(len(skills.Required))
}

func (s CareerScorer) complexityMultiplier(level string) float64 {
	if level == "" {
		return 1
	}
	m, ok := s.ds.ComplexityMultiplier(level)
	if !ok {
		return 1
	}
	if m > s.cfg.MaxComplexityMultiplier {
		return s.cfg.MaxComplexityMultiplier
	}
	return m
}

func averageTagScore(tags []string, vector TagVector, maxTagValue float64) float64 {
	if len(tags) == 0 {
		return 0
	}
	sum := 0.0
	for _, tag := range tags {
		sum += vector[tag] / maxTagValue
	}
	return sum / float64(len(tags))
}

func expertiseMatches(expertise []string, domain models.Domain) bool {
	for _, e := range expertise {
		switch e {
		case models.ExpertiseAny, models.ExpertiseAnyTechnical, string(domain):
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
