// internal/models/questionnaire.go
package models

import "sort"

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeMultipleSelect QuestionType = "multiple_select"
	QuestionTypeRanking        QuestionType = "ranking"
	QuestionTypeScale          QuestionType = "scale"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeMultipleSelect, QuestionTypeRanking, QuestionTypeScale:
		return true
	}
	return false
}

// QuestionCategory selects the weight applied to every tag a question contributes.
type QuestionCategory string

const (
	QuestionCategorySkills                 QuestionCategory = "skills"
	QuestionCategoryValues                 QuestionCategory = "values"
	QuestionCategoryTemperament            QuestionCategory = "temperament"
	QuestionCategoryTechnicalPrerequisites QuestionCategory = "technical_prerequisites"
)

type Option struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

type Question struct {
	ID        string           `json:"id"`
	Text      string           `json:"text"`
	Category  QuestionCategory `json:"category"`
	Type      QuestionType     `json:"type"`
	Options   []Option         `json:"options,omitempty"`
	ScaleTags map[int][]string `json:"scaleTagMap,omitempty"`
	ScaleMin  int              `json:"scaleMin,omitempty"`
	ScaleMax  int              `json:"scaleMax,omitempty"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// ScaleValues lists the selectable scale values in ascending order. The
// explicit min/max bounds win; otherwise the keys of the scale tag map are used.
func (q Question) ScaleValues() []int {
	if q.ScaleMax > q.ScaleMin {
		values := make([]int, 0, q.ScaleMax-q.ScaleMin+1)
		for v := q.ScaleMin; v <= q.ScaleMax; v++ {
			values = append(values, v)
		}
		return values
	}

	values := make([]int, 0, len(q.ScaleTags))
	for v := range q.ScaleTags {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// EmittedTags returns every tag the question can contribute, in no particular order.
func (q Question) EmittedTags() []string {
	var tags []string
	for _, opt := range q.Options {
		tags = append(tags, opt.Tags...)
	}
	for _, scaleTags := range q.ScaleTags {
		tags = append(tags, scaleTags...)
	}
	return tags
}
