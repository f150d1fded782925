// internal/dataset/validate.go
package dataset

import (
	"errors"
	"fmt"

	"career-match/internal/models"
)

// Validate rejects structural problems that would make scoring meaningless.
// Vocabulary drift is not a validation error; see Audit.
func Validate(docs Documents) error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	q := docs.Questionnaire
	questions := make(map[string]models.Question, len(q.Questions))
	if len(q.Questions) == 0 {
		add("questionnaire has no questions")
	}
	for i, question := range q.Questions {
		if question.ID == "" {
			add("question %d: id is required", i)
			continue
		}
		if _, dup := questions[question.ID]; dup {
			add("question %s: duplicate id", question.ID)
			continue
		}
		questions[question.ID] = question
		errs = append(errs, validateQuestion(question)...)
	}

	for category, w := range q.Scoring.Weights {
		if w < 0 {
			add("scoring weight %s: must not be negative", category)
		}
	}

	if q.DomainQuestion == "" {
		add("domain_question is required")
	} else if _, ok := questions[q.DomainQuestion]; !ok {
		add("domain_question %s: no such question", q.DomainQuestion)
	}

	for careerID, rules := range q.KnockoutRules {
		for _, t := range rules.Thresholds {
			question, ok := questions[t.QuestionID]
			if !ok {
				add("knockout rule %s.%s: no such question", careerID, t.QuestionID)
				continue
			}
			if question.Type != models.QuestionTypeScale {
				add("knockout rule %s.%s: threshold on a %s question", careerID, t.QuestionID, question.Type)
			}
		}
		if rules.HasDomainRule() {
			if rules.DomainQuestionID != q.DomainQuestion {
				add("knockout rule %s.%s: domain rules must use the domain question", careerID, rules.DomainQuestionID)
			}
			for _, d := range rules.AcceptedDomains {
				if !d.Valid() || d == models.DomainNone {
					add("knockout rule %s: unknown domain %q", careerID, d)
				}
			}
		}
	}

	t := docs.Taxonomy
	for category, w := range t.CareerCategories {
		if w.Skills < 0 || w.Values < 0 || w.Temperament < 0 {
			add("career category %s: weights must not be negative", category)
		}
	}
	for domain, info := range t.PhDDomains {
		if !domain.Valid() || domain == models.DomainNone {
			add("phd domain %q: unknown domain", domain)
		}
		if info.BonusMultiplier < 1 {
			add("phd domain %s: bonus multiplier %.2f is below 1", domain, info.BonusMultiplier)
		}
	}
	for level, c := range t.SkillComplexity {
		if c.Multiplier <= 0 {
			add("skill complexity %s: multiplier must be positive", level)
		}
	}
	profiles := make(map[string]struct{}, len(t.Careers))
	for i, p := range t.Careers {
		if p.ID == "" {
			add("career profile %d: id is required", i)
			continue
		}
		if _, dup := profiles[p.ID]; dup {
			add("career profile %s: duplicate id", p.ID)
		}
		profiles[p.ID] = struct{}{}
	}

	if len(docs.Catalog.Careers) == 0 {
		add("catalog has no careers")
	}
	catalog := make(map[string]struct{}, len(docs.Catalog.Careers))
	for i, entry := range docs.Catalog.Careers {
		if entry.ID == "" {
			add("catalog entry %d: id is required", i)
			continue
		}
		if _, dup := catalog[entry.ID]; dup {
			add("catalog entry %s: duplicate id", entry.ID)
		}
		catalog[entry.ID] = struct{}{}
	}

	return errors.Join(errs...)
}

func validateQuestion(q models.Question) []error {
	var errs []error
	if !q.Type.Valid() {
		return append(errs, fmt.Errorf("question %s: unknown type %q", q.ID, q.Type))
	}

	if q.Type == models.QuestionTypeScale {
		if len(q.ScaleTags) == 0 {
			errs = append(errs, fmt.Errorf("question %s: scale question without scaleTagMap", q.ID))
		}
		return errs
	}

	if len(q.Options) == 0 {
		errs = append(errs, fmt.Errorf("question %s: %s question without options", q.ID, q.Type))
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if _, dup := seen[opt.ID]; dup {
			errs = append(errs, fmt.Errorf("question %s: duplicate option %s", q.ID, opt.ID))
		}
		seen[opt.ID] = struct{}{}
	}
	return errs
}
