// Package engine scores a questionnaire answer set against the career catalog.
//
// The pipeline is: tag extraction and domain classification over the answers,
// then per catalog career a knockout check and a score, then ranking of the
// qualifying careers and a radar projection of the tag vector. The engine is
// a pure function of its inputs and the immutable dataset; one Engine may
// serve any number of concurrent assessments.
package engine

import (
	"fmt"

	"career-match/internal/dataset"
	"career-match/internal/models"
)

// Options tunes a single assessment.
type Options struct {
	// Limit caps the number of matches; 0 selects Config.TopN.
	Limit int
	// IncludeGaps adds disqualified careers to the result as gaps.
	IncludeGaps bool
}

type Engine struct {
	ds        *dataset.Dataset
	cfg       Config
	extractor TagExtractor
	knockout  KnockoutFilter
	scorer    CareerScorer
	ranker    Ranker
	radar     RadarAggregator
}

func New(ds *dataset.Dataset, cfg Config) (*Engine, error) {
	if ds == nil {
		return nil, fmt.Errorf("engine: dataset is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid config: %w", err)
	}

	return &Engine{
		ds:        ds,
		cfg:       cfg,
		extractor: NewTagExtractor(ds, cfg),
		knockout:  NewKnockoutFilter(ds),
		scorer:    NewCareerScorer(ds, cfg),
		ranker:    NewRanker(cfg),
		radar:     NewRadarAggregator(cfg),
	}, nil
}

func (e *Engine) Dataset() *dataset.Dataset {
	return e.ds
}

func (e *Engine) Config() Config {
	return e.cfg
}

// CategoryWeights returns the weights used for a career category.
func (e *Engine) CategoryWeights(category string) models.CategoryWeights {
	return e.scorer.CategoryWeights(category)
}

// Assess runs the full pipeline over answers.
func (e *Engine) Assess(answers models.Answers, opts Options) models.Assessment {
	vector, unresolved := e.extractor.ExtractAll(answers)
	sortUnresolved(unresolved)
	domain := ClassifyDomain(e.ds, answers)

	var (
		qualified    []MatchResult
		disqualified []MatchResult
		knockouts    []models.KnockoutResult
		excluded     = []string{}
	)
	for _, entry := range e.ds.Catalog() {
		profile, _ := e.ds.ResolveProfile(entry)
		ko := e.knockout.Evaluate(entry.ID, answers, domain)
		if !ko.Qualifies {
			excluded = append(excluded, entry.ID)
			if opts.IncludeGaps {
				disqualified = append(disqualified, e.scorer.Score(profile, vector, domain))
				knockouts = append(knockouts, ko)
			}
			continue
		}

		result := e.scorer.Score(profile, vector, domain)
		if len(ko.MetRequirements) > 0 {
			result.Prerequisites = ko.MetRequirements
		}
		qualified = append(qualified, result)
	}

	matches := e.ranker.Rank(qualified, opts.Limit)

	var breakdown *models.CategoryScores
	if len(matches) > 0 {
		breakdown = &matches[0].CategoryScores
	}

	if unresolved == nil {
		unresolved = []models.UnresolvedReference{}
	}
	assessment := models.Assessment{
		Status:         e.status(matches),
		DatasetVersion: e.ds.Version(),
		Matches:        matches,
		RadarData:      e.radar.Aggregate(vector, breakdown),
		UserProfile: models.UserProfile{
			Domain:  domain,
			TopTags: vector.Top(e.cfg.TopTagCount, isDomainMarker),
		},
		Diagnostics: models.Diagnostics{
			Unresolved:   unresolved,
			Disqualified: excluded,
		},
	}
	if opts.IncludeGaps {
		if gaps := e.ranker.Gaps(disqualified, knockouts); len(gaps) > 0 {
			assessment.Gaps = gaps
		}
	}
	return assessment
}

func (e *Engine) status(matches []models.CareerMatch) models.AssessmentStatus {
	switch {
	case len(matches) == 0:
		return models.StatusNoMatch
	case matches[0].TotalScore < e.cfg.LowConfidenceThreshold:
		return models.StatusLowConfidence
	default:
		return models.StatusMatched
	}
}
