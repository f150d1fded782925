// internal/engine/fixture_test.go
package engine

import (
	"testing"

	"career-match/internal/dataset"
	"career-match/internal/models"

	"github.com/stretchr/testify/require"
)

// fixtureDataset is small enough that every expected score can be worked out by hand.
func fixtureDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.New(dataset.Documents{
		Questionnaire: dataset.Questionnaire{
			Version:        "fixture",
			DomainQuestion: "domain_q",
			Scoring: dataset.Scoring{Weights: map[models.QuestionCategory]float64{
				models.QuestionCategorySkills:                 1.5,
				models.QuestionCategoryValues:                 1.0,
				models.QuestionCategoryTemperament:            1.0,
				models.QuestionCategoryTechnicalPrerequisites: 0.5,
			}},
			Questions: []models.Question{
				{
					ID:       "skills_q",
					Category: models.QuestionCategorySkills,
					Type:     models.QuestionTypeMultipleChoice,
					Options: []models.Option{
						{ID: "a", Tags: []string{"programming", "statistics"}},
						{ID: "b", Tags: []string{"communication"}},
					},
				},
				{
					ID:       "select_q",
					Category: models.QuestionCategorySkills,
					Type:     models.QuestionTypeMultipleSelect,
					Options: []models.Option{
						{ID: "x", Tags: []string{"data analysis"}},
						{ID: "y", Tags: []string{"leadership"}},
					},
				},
				{
					ID:       "rank_q",
					Category: models.QuestionCategoryValues,
					Type:     models.QuestionTypeRanking,
					Options: []models.Option{
						{ID: "A", Tags: []string{"alpha"}},
						{ID: "B", Tags: []string{"beta"}},
						{ID: "C", Tags: []string{"gamma"}},
					},
				},
				{
					ID:       "coding",
					Category: models.QuestionCategoryTechnicalPrerequisites,
					Type:     models.QuestionTypeScale,
					ScaleMin: 0,
					ScaleMax: 4,
					ScaleTags: map[int][]string{
						3: {"programming"},
						4: {"programming", "machine learning"},
					},
				},
				{
					ID:       "domain_q",
					Category: models.QuestionCategoryTechnicalPrerequisites,
					Type:     models.QuestionTypeMultipleChoice,
					Options: []models.Option{
						{ID: "life", Tags: []string{"life_sciences_domain"}},
						{ID: "math", Tags: []string{"mathematical_domain", "logical reasoning"}},
						{ID: "multi", Tags: []string{"engineering_domain", "life_sciences_domain"}},
						{ID: "none", Tags: []string{"curiosity"}},
					},
				},
				{
					ID:       "mood_q",
					Category: models.QuestionCategoryTemperament,
					Type:     models.QuestionTypeMultipleChoice,
					Options: []models.Option{
						{ID: "calm", Tags: []string{"calm"}},
					},
				},
			},
			KnockoutRules: map[string]models.KnockoutRules{
				"engineer": {
					Thresholds: []models.ThresholdRule{{QuestionID: "coding", Min: 3, Description: "Writes production code"}},
				},
				"biologist": {
					DomainQuestionID: "domain_q",
					AcceptedDomains:  []models.Domain{models.DomainLifeSciences},
				},
			},
		},
		Taxonomy: dataset.Taxonomy{
			Version: "fixture",
			CareerCategories: map[string]models.CategoryWeights{
				"technology": {Skills: 0.6, Values: 0.2, Temperament: 0.2},
			},
			PhDDomains: map[models.Domain]models.DomainInfo{
				models.DomainMathematical: {BonusMultiplier: 1.3},
				models.DomainLifeSciences: {BonusMultiplier: 1.15},
			},
			SkillComplexity: map[string]models.SkillComplexity{
				"advanced": {Multiplier: 1.5},
				"expert":   {Multiplier: 1.8},
			},
			Careers: []models.CareerProfile{
				{
					ID:              "engineer",
					Name:            "Engineer",
					Category:        "Technology",
					DomainExpertise: []string{"mathematical"},
					Skills: models.SkillSet{
						Required:         []string{"programming", "statistics"},
						ComplexityLevels: map[string]string{"programming": "expert"},
					},
					Values:      []string{"beta"},
					Temperament: []string{"calm"},
				},
				{
					ID:              "biologist",
					Name:            "Biologist",
					Category:        "Life Science",
					DomainExpertise: []string{"life_sciences"},
					Skills:          models.SkillSet{Required: []string{"data analysis"}},
					Values:          []string{"alpha"},
					Temperament:     []string{"calm"},
				},
				{
					ID:              "speaker",
					Name:            "Speaker",
					Category:        "Technology",
					DomainExpertise: []string{"any"},
					Skills:          models.SkillSet{Required: []string{"communication", "leadership"}},
					Values:          []string{"gamma"},
				},
			},
		},
		Catalog: dataset.Catalog{
			Version: "fixture",
			Careers: []models.CatalogEntry{
				{ID: "engineer", Name: "Engineer"},
				{ID: "biologist", Name: "Biologist"},
				{ID: "speaker", Name: "Speaker"},
				{ID: "generalist", Name: "Generalist"},
			},
		},
	})
	require.NoError(t, err)
	return ds
}

func embeddedDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.LoadEmbedded()
	require.NoError(t, err)
	return ds
}

func newTestEngine(t *testing.T, ds *dataset.Dataset) *Engine {
	t.Helper()
	e, err := New(ds, DefaultConfig())
	require.NoError(t, err)
	return e
}

func single(v string) models.Answer {
	return models.SingleAnswer(v)
}

func list(v ...string) models.Answer {
	return models.ListAnswer(v...)
}
