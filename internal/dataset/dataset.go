// Package dataset holds the static questionnaire, career taxonomy and catalog
// the engine scores against. A Dataset is built once, validated, and then only
// read; it is safe for concurrent use.
package dataset

import (
	"regexp"
	"strings"

	"career-match/internal/models"
)

// Questionnaire is the questions document.
type Questionnaire struct {
	Version        string                          `json:"version"`
	DomainQuestion string                          `json:"domain_question"`
	Scoring        Scoring                         `json:"scoring"`
	Questions      []models.Question               `json:"questions"`
	KnockoutRules  map[string]models.KnockoutRules `json:"knockout_rules,omitempty"`
}

type Scoring struct {
	Weights map[models.QuestionCategory]float64 `json:"weights"`
}

// Taxonomy is the career profiles document and its scoring tables.
type Taxonomy struct {
	Version          string                              `json:"version"`
	CareerCategories map[string]models.CategoryWeights   `json:"career_categories"`
	PhDDomains       map[models.Domain]models.DomainInfo `json:"phd_domains"`
	SkillComplexity  map[string]models.SkillComplexity   `json:"skill_complexity"`
	Careers          []models.CareerProfile              `json:"careers"`
}

// Catalog is the ordered list of careers offered to users. Its order is the
// tie-break order of the ranking.
type Catalog struct {
	Version string                `json:"version"`
	Careers []models.CatalogEntry `json:"careers"`
}

// Documents bundles the three source documents. Version, when set, overrides
// the questionnaire version as the dataset version.
type Documents struct {
	Version       string
	Questionnaire Questionnaire
	Taxonomy      Taxonomy
	Catalog       Catalog
}

type Dataset struct {
	version   string
	docs      Documents
	questions map[string]models.Question
	profiles  map[string]models.CareerProfile
}

// New validates docs and indexes them into an immutable Dataset.
func New(docs Documents) (*Dataset, error) {
	if err := Validate(docs); err != nil {
		return nil, err
	}

	d := &Dataset{
		version:   docs.Version,
		docs:      docs,
		questions: make(map[string]models.Question, len(docs.Questionnaire.Questions)),
		profiles:  make(map[string]models.CareerProfile, len(docs.Taxonomy.Careers)),
	}
	if d.version == "" {
		d.version = docs.Questionnaire.Version
	}
	for _, q := range docs.Questionnaire.Questions {
		d.questions[q.ID] = q
	}
	for _, p := range docs.Taxonomy.Careers {
		d.profiles[p.ID] = p
	}
	return d, nil
}

func (d *Dataset) Version() string {
	return d.version
}

// Documents returns the source documents, e.g. for publishing to postgres.
func (d *Dataset) Documents() Documents {
	return d.docs
}

// Questions returns the questions in questionnaire order.
func (d *Dataset) Questions() []models.Question {
	return append([]models.Question(nil), d.docs.Questionnaire.Questions...)
}

func (d *Dataset) Question(id string) (models.Question, bool) {
	q, ok := d.questions[id]
	return q, ok
}

// DomainQuestionID is the designated question the domain is classified from.
func (d *Dataset) DomainQuestionID() string {
	return d.docs.Questionnaire.DomainQuestion
}

// QuestionWeight returns the weight for a question category, if configured.
func (d *Dataset) QuestionWeight(category models.QuestionCategory) (float64, bool) {
	w, ok := d.docs.Questionnaire.Scoring.Weights[category]
	return w, ok
}

func (d *Dataset) KnockoutRules(careerID string) (models.KnockoutRules, bool) {
	rules, ok := d.docs.Questionnaire.KnockoutRules[careerID]
	return rules, ok
}

// Catalog returns the catalog entries in catalog order.
func (d *Dataset) Catalog() []models.CatalogEntry {
	return append([]models.CatalogEntry(nil), d.docs.Catalog.Careers...)
}

// Profile returns the curated profile for a career, if the taxonomy has one.
func (d *Dataset) Profile(careerID string) (models.CareerProfile, bool) {
	p, ok := d.profiles[careerID]
	return p, ok
}

// ResolveProfile returns the curated profile for entry, or the minimal profile
// when the taxonomy has none. The bool reports whether the profile is curated.
func (d *Dataset) ResolveProfile(entry models.CatalogEntry) (models.CareerProfile, bool) {
	if p, ok := d.profiles[entry.ID]; ok {
		if p.Name == "" {
			p.Name = entry.Name
		}
		return p, true
	}
	return MinimalProfile(entry), false
}

// CategoryWeights looks up the weights for a free-form career category.
func (d *Dataset) CategoryWeights(category string) (models.CategoryWeights, bool) {
	w, ok := d.docs.Taxonomy.CareerCategories[CategoryKey(category)]
	return w, ok
}

// CareerCategories returns a copy of the configured category weight table.
func (d *Dataset) CareerCategories() map[string]models.CategoryWeights {
	out := make(map[string]models.CategoryWeights, len(d.docs.Taxonomy.CareerCategories))
	for k, v := range d.docs.Taxonomy.CareerCategories {
		out[k] = v
	}
	return out
}

// DomainBonusMultiplier returns the configured multiplier for domain.
func (d *Dataset) DomainBonusMultiplier(domain models.Domain) (float64, bool) {
	info, ok := d.docs.Taxonomy.PhDDomains[domain]
	if !ok {
		return 0, false
	}
	return info.BonusMultiplier, true
}

func (d *Dataset) DomainLabel(domain models.Domain) string {
	if info, ok := d.docs.Taxonomy.PhDDomains[domain]; ok && info.Label != "" {
		return info.Label
	}
	return string(domain)
}

func (d *Dataset) ComplexityMultiplier(level string) (float64, bool) {
	c, ok := d.docs.Taxonomy.SkillComplexity[level]
	if !ok {
		return 0, false
	}
	return c.Multiplier, true
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CategoryKey normalises a career category for the weight lookup: lowercased,
// whitespace runs replaced by "_", empty mapped to "general".
func CategoryKey(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return "general"
	}
	return whitespaceRun.ReplaceAllString(key, "_")
}
