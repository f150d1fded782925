// internal/models/assessment.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Tier string

const (
	TierStrongMatch    Tier = "strong_match"
	TierGoodMatch      Tier = "good_match"
	TierPotentialMatch Tier = "potential_match"
	TierWeakMatch      Tier = "weak_match"
	TierGapToBridge    Tier = "gap_to_bridge"
)

type AssessmentStatus string

const (
	StatusMatched       AssessmentStatus = "matched"
	StatusLowConfidence AssessmentStatus = "low_confidence"
	StatusNoMatch       AssessmentStatus = "no_match"
)

type CategoryScores struct {
	Skills      float64 `json:"skills"`
	Values      float64 `json:"values"`
	Temperament float64 `json:"temperament"`
}

type CareerMatch struct {
	CareerID        string         `json:"careerId"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	CategoryScores  CategoryScores `json:"categoryScores"`
	DomainBonus     float64        `json:"domainBonus"`
	TotalScore      float64        `json:"totalScore"`
	Score           int            `json:"score"`
	Tier            Tier           `json:"tier"`
	TierLabel       string         `json:"tierLabel"`
	TierDescription string         `json:"tierDescription"`
	Prerequisites   []string       `json:"prerequisites,omitempty"`
}

// FailedRequirement describes one unmet knockout rule. Actual and Required
// are scale levels for thresholds; for the domain rule Actual is the user's
// domain and Required the accepted domains.
type FailedRequirement struct {
	Rule        string           `json:"rule"`
	Description string           `json:"description"`
	Actual      RequirementValue `json:"actual"`
	Required    RequirementValue `json:"required"`
}

type KnockoutResult struct {
	Qualifies          bool                `json:"qualifies"`
	MetRequirements    []string            `json:"metRequirements"`
	FailedRequirements []FailedRequirement `json:"failedRequirements"`
}

// CareerGap is a disqualified career surfaced for diagnostic display.
type CareerGap struct {
	CareerID           string              `json:"careerId"`
	Name               string              `json:"name"`
	Category           string              `json:"category"`
	TotalScore         float64             `json:"totalScore"`
	Score              int                 `json:"score"`
	Tier               Tier                `json:"tier"`
	TierLabel          string              `json:"tierLabel"`
	TierDescription    string              `json:"tierDescription"`
	GapCount           int                 `json:"gapCount"`
	FailedRequirements []FailedRequirement `json:"failedRequirements"`
}

type RadarData struct {
	Categories        []string        `json:"categories"`
	Scores            []float64       `json:"scores"`
	TopMatchBreakdown *CategoryScores `json:"topMatchBreakdown,omitempty"`
}

type UserProfile struct {
	Domain  Domain   `json:"domain"`
	TopTags []string `json:"topTags"`
}

type UnresolvedKind string

const (
	UnresolvedUnknownQuestion    UnresolvedKind = "unknown_question"
	UnresolvedUnknownOption      UnresolvedKind = "unknown_option"
	UnresolvedInvalidScaleValue  UnresolvedKind = "invalid_scale_value"
	UnresolvedUnmappedScaleValue UnresolvedKind = "unmapped_scale_value"
	UnresolvedInvalidAnswerShape UnresolvedKind = "invalid_answer_shape"
)

// UnresolvedReference records an answer that contributed nothing because it
// did not resolve against the dataset.
type UnresolvedReference struct {
	Kind       UnresolvedKind `json:"kind"`
	QuestionID string         `json:"questionId"`
	Value      string         `json:"value,omitempty"`
	Detail     string         `json:"detail,omitempty"`
}

// Diagnostics lists what the assessment could not use and which careers the
// knockout rules excluded.
type Diagnostics struct {
	Unresolved   []UnresolvedReference `json:"unresolved"`
	Disqualified []string              `json:"disqualified"`
}

type Assessment struct {
	Status         AssessmentStatus `json:"status"`
	DatasetVersion string           `json:"datasetVersion"`
	Matches        []CareerMatch    `json:"matches"`
	RadarData      RadarData        `json:"radarData"`
	UserProfile    UserProfile      `json:"userProfile"`
	Gaps           []CareerGap      `json:"gaps,omitempty"`
	Diagnostics    Diagnostics      `json:"diagnostics"`
}

// RadarDimension is one chart axis and the tags that feed it.
type RadarDimension struct {
	Name string   `json:"name" mapstructure:"name"`
	Tags []string `json:"tags" mapstructure:"tags"`
}

type requirementKind uint8

const (
	requirementLevel requirementKind = iota
	requirementDomain
	requirementDomains
)

// RequirementValue is a scale level, a single domain or a set of domains.
// It encodes as a JSON number, string or array respectively.
type RequirementValue struct {
	kind    requirementKind
	level   int
	domains []Domain
}

func LevelValue(level int) RequirementValue {
	return RequirementValue{kind: requirementLevel, level: level}
}

func DomainValue(domain Domain) RequirementValue {
	return RequirementValue{kind: requirementDomain, domains: []Domain{domain}}
}

func DomainsValue(domains ...Domain) RequirementValue {
	out := make([]Domain, len(domains))
	copy(out, domains)
	return RequirementValue{kind: requirementDomains, domains: out}
}

// Level returns the scale level, or 0 for domain values.
func (v RequirementValue) Level() int {
	return v.level
}

func (v RequirementValue) Domains() []Domain {
	return append([]Domain(nil), v.domains...)
}

func (v RequirementValue) String() string {
	switch v.kind {
	case requirementDomain:
		return string(v.domains[0])
	case requirementDomains:
		return fmt.Sprint(v.domains)
	default:
		return fmt.Sprintf("%d", v.level)
	}
}

func (v RequirementValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case requirementDomain:
		return json.Marshal(v.domains[0])
	case requirementDomains:
		return json.Marshal(v.domains)
	default:
		return json.Marshal(v.level)
	}
}

func (v *RequirementValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return fmt.Errorf("empty requirement value")
	case data[0] == '[':
		var domains []Domain
		if err := json.Unmarshal(data, &domains); err != nil {
			return err
		}
		*v = DomainsValue(domains...)
	case data[0] == '"':
		var domain Domain
		if err := json.Unmarshal(data, &domain); err != nil {
			return err
		}
		*v = DomainValue(domain)
	default:
		var level int
		if err := json.Unmarshal(data, &level); err != nil {
			return fmt.Errorf("requirement value must be a level, a domain or a list of domains: %w", err)
		}
		*v = LevelValue(level)
	}
	return nil
}
