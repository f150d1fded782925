// internal/engine/config.go
package engine

import (
	"errors"
	"fmt"
	"sort"

	"career-match/internal/common/config"
	"career-match/internal/models"
)

// TierThreshold is one row of the tier table. A score falls into the first
// row, in descending MinScore order, whose MinScore it reaches.
type TierThreshold struct {
	Tier        models.Tier
	Label       string
	Description string
	MinScore    float64
}

// Config holds every scoring constant the dataset does not carry.
type Config struct {
	// TopN is the default number of matches returned.
	TopN int
	// TopTagCount is the number of tags reported in the user profile.
	TopTagCount int
	// DefaultQuestionWeight applies to question categories without a dataset weight.
	DefaultQuestionWeight float64
	// DefaultCategoryWeights applies to career categories without a dataset entry.
	DefaultCategoryWeights models.CategoryWeights
	// DefaultDomainBonus applies when a matching domain has no configured multiplier.
	DefaultDomainBonus float64
	// MaxComplexityMultiplier caps per-skill complexity multipliers.
	MaxComplexityMultiplier float64
	// LowConfidenceThreshold marks an assessment low_confidence when the top score is below it.
	LowConfidenceThreshold float64
	Tiers                  []TierThreshold
	GapTier                TierThreshold
	RadarDimensions        []models.RadarDimension
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		TopN:                    6,
		TopTagCount:             10,
		DefaultQuestionWeight:   1,
		DefaultCategoryWeights:  models.CategoryWeights{Skills: 0.5, Values: 0.3, Temperament: 0.2},
		DefaultDomainBonus:      0.15,
		MaxComplexityMultiplier: 1.5,
		LowConfidenceThreshold:  0.40,
		Tiers: []TierThreshold{
			{Tier: models.TierStrongMatch, Label: "Strong Match", Description: "Prerequisites met with high compatibility", MinScore: 0.80},
			{Tier: models.TierGoodMatch, Label: "Good Match", Description: "Prerequisites met with good compatibility", MinScore: 0.60},
			{Tier: models.TierPotentialMatch, Label: "Potential Match", Description: "Prerequisites met but consider skill development", MinScore: 0.40},
			{Tier: models.TierWeakMatch, Label: "Weak Match", Description: "Prerequisites met but low compatibility", MinScore: 0},
		},
		GapTier: TierThreshold{
			Tier:        models.TierGapToBridge,
			Label:       "Gap to Bridge",
			Description: "High compatibility but missing key prerequisites",
		},
		RadarDimensions: []models.RadarDimension{
			{Name: "Technical Skills", Tags: []string{"data analysis", "programming", "experimental design", "technical expertise", "computational modeling"}},
			{Name: "Leadership", Tags: []string{"leadership", "project management", "strategic thinking", "teaching", "negotiation"}},
			{Name: "Communication", Tags: []string{"communication", "public speaking", "technical writing", "relationship building", "storytelling"}},
			{Name: "Creativity", Tags: []string{"creativity", "innovation", "design thinking", "aesthetics", "user-centered design"}},
			{Name: "Independence", Tags: []string{"independence", "entrepreneurship", "autonomy", "self-directed", "practical impact"}},
			{Name: "Collaboration", Tags: []string{"collaboration", "teamwork", "community", "knowledge-sharing", "empathetic"}},
			{Name: "Impact Focus", Tags: []string{"societal impact", "mission-driven work", "ethics", "education", "knowledge creation"}},
			{Name: "Analytical Thinking", Tags: []string{"analytical thinking", "systematic", "methodical", "problem-solving", "logical reasoning"}},
		},
	}
}

// FromSettings overlays the non-zero values of the engine config section on
// the defaults.
func FromSettings(s config.EngineConfig) Config {
	cfg := DefaultConfig()

	if s.TopN > 0 {
		cfg.TopN = s.TopN
	}
	if s.TopTagCount > 0 {
		cfg.TopTagCount = s.TopTagCount
	}
	if s.DefaultQuestionWeight > 0 {
		cfg.DefaultQuestionWeight = s.DefaultQuestionWeight
	}
	if w := s.DefaultCategoryWeights; w.Skills > 0 || w.Values > 0 || w.Temperament > 0 {
		cfg.DefaultCategoryWeights = models.CategoryWeights{Skills: w.Skills, Values: w.Values, Temperament: w.Temperament}
	}
	if s.DefaultDomainBonus > 0 {
		cfg.DefaultDomainBonus = s.DefaultDomainBonus
	}
	if s.MaxComplexityMultiplier > 0 {
		cfg.MaxComplexityMultiplier = s.MaxComplexityMultiplier
	}
	if s.LowConfidenceThreshold > 0 {
		cfg.LowConfidenceThreshold = s.LowConfidenceThreshold
	}

	if len(s.Tiers) > 0 {
		var tiers []TierThreshold
		for _, t := range s.Tiers {
			row := TierThreshold{Tier: models.Tier(t.Tier), Label: t.Label, Description: t.Description, MinScore: t.MinScore}
			if row.Tier == models.TierGapToBridge {
				cfg.GapTier = row
				continue
			}
			tiers = append(tiers, row)
		}
		if len(tiers) > 0 {
			sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinScore > tiers[j].MinScore })
			cfg.Tiers = tiers
		}
	}

	if len(s.RadarDimensions) > 0 {
		dims := make([]models.RadarDimension, 0, len(s.RadarDimensions))
		for _, d := range s.RadarDimensions {
			dims = append(dims, models.RadarDimension{Name: d.Name, Tags: append([]string(nil), d.Tags...)})
		}
		cfg.RadarDimensions = dims
	}

	return cfg
}

// Validate reports every inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.TopN <= 0 {
		errs = append(errs, fmt.Errorf("top_n must be positive, got %d", c.TopN))
	}
	if c.TopTagCount < 0 {
		errs = append(errs, fmt.Errorf("top_tag_count must not be negative, got %d", c.TopTagCount))
	}
	if c.DefaultQuestionWeight < 0 {
		errs = append(errs, errors.New("default_question_weight must not be negative"))
	}
	if w := c.DefaultCategoryWeights; w.Skills < 0 || w.Values < 0 || w.Temperament < 0 {
		errs = append(errs, errors.New("default_category_weights must not be negative"))
	}
	if c.DefaultDomainBonus < 0 {
		errs = append(errs, errors.New("default_domain_bonus must not be negative"))
	}
	if c.MaxComplexityMultiplier < 1 {
		errs = append(errs, fmt.Errorf("max_complexity_multiplier must be at least 1, got %.2f", c.MaxComplexityMultiplier))
	}
	if c.LowConfidenceThreshold < 0 || c.LowConfidenceThreshold > 1 {
		errs = append(errs, fmt.Errorf("low_confidence_threshold must be within [0,1], got %.2f", c.LowConfidenceThreshold))
	}

	if len(c.Tiers) == 0 {
		errs = append(errs, errors.New("at least one tier is required"))
	}
	for i, t := range c.Tiers {
		if t.Tier == "" {
			errs = append(errs, fmt.Errorf("tier %d: name is required", i))
		}
		if t.MinScore < 0 || t.MinScore > 1 {
			errs = append(errs, fmt.Errorf("tier %s: min_score must be within [0,1]", t.Tier))
		}
		if i > 0 && t.MinScore >= c.Tiers[i-1].MinScore {
			errs = append(errs, fmt.Errorf("tier %s: thresholds must be strictly descending", t.Tier))
		}
	}

	if len(c.RadarDimensions) == 0 {
		errs = append(errs, errors.New("at least one radar dimension is required"))
	}
	for i, d := range c.RadarDimensions {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("radar dimension %d: name is required", i))
		}
		if len(d.Tags) == 0 {
			errs = append(errs, fmt.Errorf("radar dimension %s: at least one tag is required", d.Name))
		}
	}

	return errors.Join(errs...)
}

// tierFor returns the first tier whose threshold score reaches, or the last
// tier when none does.
func (c Config) tierFor(score float64) TierThreshold {
	for _, t := range c.Tiers {
		if score >= t.MinScore {
			return t
		}
	}
	return c.Tiers[len(c.Tiers)-1]
}
