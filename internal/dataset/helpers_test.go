// internal/dataset/helpers_test.go
package dataset

import "career-match/internal/models"

// smallDocs returns a fresh, valid dataset small enough to reason about by hand.
func smallDocs() Documents {
	return Documents{
		Questionnaire: Questionnaire{
			Version:        "test-1",
			DomainQuestion: "domain",
			Scoring: Scoring{Weights: map[models.QuestionCategory]float64{
				models.QuestionCategorySkills: 1.5,
				models.QuestionCategoryValues: 1,
			}},
			Questions: []models.Question{
				{
					ID:       "skills",
					Category: models.QuestionCategorySkills,
					Type:     models.QuestionTypeMultipleChoice,
					Options: []models.Option{
						{ID: "a", Tags: []string{"programming"}},
						{ID: "b", Tags: []string{"communication"}},
					},
				},
				{
					ID:        "coding",
					Category:  models.QuestionCategoryTechnicalPrerequisites,
					Type:      models.QuestionTypeScale,
					ScaleMin:  0,
					ScaleMax:  4,
					ScaleTags: map[int][]string{3: {"programming"}},
				},
				{
					ID:       "domain",
					Category: models.QuestionCategoryTechnicalPrerequisites,
					Type:     models.QuestionTypeMultipleChoice,
					Options: []models.Option{
						{ID: "a", Tags: []string{"life_sciences_domain"}},
						{ID: "b", Tags: []string{"mathematical_domain"}},
					},
				},
			},
			KnockoutRules: map[string]models.KnockoutRules{
				"engineer": {
					Thresholds: []models.ThresholdRule{{QuestionID: "coding", Min: 2, Description: "Writes code"}},
				},
			},
		},
		Taxonomy: Taxonomy{
			Version: "test-1",
			CareerCategories: map[string]models.CategoryWeights{
				"technology": {Skills: 0.6, Values: 0.2, Temperament: 0.2},
			},
			PhDDomains: map[models.Domain]models.DomainInfo{
				models.DomainMathematical: {Label: "Mathematics", BonusMultiplier: 1.3},
			},
			SkillComplexity: map[string]models.SkillComplexity{
				"advanced": {Multiplier: 1.5},
			},
			Careers: []models.CareerProfile{
				{
					ID:              "engineer",
					Name:            "Engineer",
					Category:        "Technology",
					DomainExpertise: []string{"mathematical"},
					Skills:          models.SkillSet{Required: []string{"programming"}},
					Values:          []string{},
					Temperament:     []string{},
				},
			},
		},
		Catalog: Catalog{
			Version: "test-1",
			Careers: []models.CatalogEntry{
				{ID: "engineer", Name: "Engineer"},
				{ID: "writer", Name: "Writer"},
			},
		},
	}
}
