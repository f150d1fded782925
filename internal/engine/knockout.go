// internal/engine/knockout.go
package engine

import (
	"fmt"

	"career-match/internal/dataset"
	"career-match/internal/models"
)

// KnockoutFilter applies the hard prerequisites of each career.
type KnockoutFilter struct {
	ds *dataset.Dataset
}

func NewKnockoutFilter(ds *dataset.Dataset) KnockoutFilter {
	return KnockoutFilter{ds: ds}
}

// Evaluate decides whether the user qualifies for careerID. A career without
// rules always qualifies. Missing or unparsable scale answers count as 0.
func (f KnockoutFilter) Evaluate(careerID string, answers models.Answers, domain models.Domain) models.KnockoutResult {
	result := models.KnockoutResult{
		Qualifies:          true,
		MetRequirements:    []string{},
		FailedRequirements: []models.FailedRequirement{},
	}

	rules, ok := f.ds.KnockoutRules(careerID)
	if !ok {
		return result
	}

	for _, rule := range rules.Thresholds {
		actual := 0
		if answer, ok := answers[rule.QuestionID]; ok && !answer.IsList() {
			if v, ok := ParseScaleValue(answer.Value()); ok {
				actual = v
			}
		}

		if actual >= rule.Min {
			result.MetRequirements = append(result.MetRequirements, fmt.Sprintf("%s: %d >= %d", rule.QuestionID, actual, rule.Min))
			continue
		}
		result.FailedRequirements = append(result.FailedRequirements, models.FailedRequirement{
			Rule:        rule.QuestionID,
			Description: rule.Description,
			Actual:      models.LevelValue(actual),
			Required:    models.LevelValue(rule.Min),
		})
	}

	if rules.HasDomainRule() {
		if acceptsDomain(rules.AcceptedDomains, domain) {
			result.MetRequirements = append(result.MetRequirements, fmt.Sprintf("PhD domain: %s matches required", domain))
		} else {
			result.FailedRequirements = append(result.FailedRequirements, models.FailedRequirement{
				Rule:        rules.DomainQuestionID,
				Description: "PhD field requirement not met",
				Actual:      models.DomainValue(domain),
				Required:    models.DomainsValue(rules.AcceptedDomains...),
			})
		}
	}

	result.Qualifies = len(result.FailedRequirements) == 0
	return result
}

func acceptsDomain(accepted []models.Domain, domain models.Domain) bool {
	if domain == models.DomainNone {
		return false
	}
	for _, d := range accepted {
		if d == domain {
			return true
		}
	}
	return false
}
