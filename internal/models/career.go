// internal/models/career.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Domain is the user's declared field of PhD or prior expertise.
type Domain string

const (
	DomainLifeSciences      Domain = "life_sciences"
	DomainPhysicalSciences  Domain = "physical_sciences"
	DomainEngineering       Domain = "engineering"
	DomainMathematical      Domain = "mathematical"
	DomainInterdisciplinary Domain = "interdisciplinary"
	DomainSocialSciences    Domain = "social_sciences"
	DomainNone              Domain = "none"
)

// Domains lists the classifiable domains, excluding DomainNone.
var Domains = []Domain{
	DomainLifeSciences,
	DomainPhysicalSciences,
	DomainEngineering,
	DomainMathematical,
	DomainInterdisciplinary,
	DomainSocialSciences,
}

func (d Domain) Valid() bool {
	if d == DomainNone {
		return true
	}
	for _, known := range Domains {
		if d == known {
			return true
		}
	}
	return false
}

// Sentinels accepted in a career's domain_expertise list.
const (
	ExpertiseAny          = "any"
	ExpertiseAnyTechnical = "any_technical"
)

// SkillSet is either a flat list of required skill tags or the structured
// form carrying a complexity level per skill.
type SkillSet struct {
	Required         []string          `json:"required"`
	ComplexityLevels map[string]string `json:"complexity_levels,omitempty"`
}

func (s *SkillSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var required []string
		if err := json.Unmarshal(data, &required); err != nil {
			return err
		}
		*s = SkillSet{Required: required}
		return nil
	}

	type structured SkillSet
	var out structured
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*s = SkillSet(out)
	return nil
}

func (s SkillSet) MarshalJSON() ([]byte, error) {
	if len(s.ComplexityLevels) == 0 {
		if s.Required == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.Required)
	}
	type structured SkillSet
	return json.Marshal(structured(s))
}

type CareerProfile struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	DomainExpertise     []string `json:"domain_expertise"`
	TechnicalComplexity string   `json:"technical_complexity,omitempty"`
	Skills              SkillSet `json:"skills"`
	Values              []string `json:"values"`
	Temperament         []string `json:"temperament"`
}

// Tags returns every skill, value and temperament tag the profile scores against.
func (p CareerProfile) Tags() []string {
	tags := make([]string, 0, len(p.Skills.Required)+len(p.Values)+len(p.Temperament))
	tags = append(tags, p.Skills.Required...)
	tags = append(tags, p.Values...)
	tags = append(tags, p.Temperament...)
	return tags
}

type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryWeights struct {
	Skills      float64 `json:"skills" mapstructure:"skills"`
	Values      float64 `json:"values" mapstructure:"values"`
	Temperament float64 `json:"temperament" mapstructure:"temperament"`
}

type DomainInfo struct {
	Label           string  `json:"label"`
	BonusMultiplier float64 `json:"bonus_multiplier"`
}

type SkillComplexity struct {
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description,omitempty"`
}

// ThresholdRule requires a scale answer to reach a minimum value.
type ThresholdRule struct {
	QuestionID  string `json:"question"`
	Min         int    `json:"min"`
	Description string `json:"description"`
}

// KnockoutRules holds the hard prerequisites of one career. Object-valued
// entries are scale thresholds keyed by question id; the array-valued entry
// lists the domains accepted for the domain question.
type KnockoutRules struct {
	Thresholds       []ThresholdRule
	DomainQuestionID string
	AcceptedDomains  []Domain
}

func (r KnockoutRules) HasDomainRule() bool {
	return r.DomainQuestionID != ""
}

func (r *KnockoutRules) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out KnockoutRules
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		if len(value) == 0 {
			continue
		}
		switch value[0] {
		case '[':
			var domains []Domain
			if err := json.Unmarshal(value, &domains); err != nil {
				return fmt.Errorf("knockout rule %s: %w", key, err)
			}
			if out.DomainQuestionID != "" {
				return fmt.Errorf("knockout rule %s: more than one domain rule", key)
			}
			out.DomainQuestionID = key
			out.AcceptedDomains = domains
		case '{':
			var threshold struct {
				Min         int    `json:"min"`
				Description string `json:"description"`
			}
			if err := json.Unmarshal(value, &threshold); err != nil {
				return fmt.Errorf("knockout rule %s: %w", key, err)
			}
			out.Thresholds = append(out.Thresholds, ThresholdRule{
				QuestionID:  key,
				Min:         threshold.Min,
				Description: threshold.Description,
			})
		default:
			return fmt.Errorf("knockout rule %s: expected an object or an array", key)
		}
	}

	sort.Slice(out.Thresholds, func(i, j int) bool {
		return out.Thresholds[i].QuestionID < out.Thresholds[j].QuestionID
	})
	*r = out
	return nil
}

func (r KnockoutRules) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(r.Thresholds)+1)
	for _, t := range r.Thresholds {
		raw[t.QuestionID] = map[string]interface{}{"min": t.Min, "description": t.Description}
	}
	if r.DomainQuestionID != "" {
		raw[r.DomainQuestionID] = r.AcceptedDomains
	}
	return json.Marshal(raw)
}
