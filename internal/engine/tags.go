// internal/engine/tags.go
package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"career-match/internal/dataset"
	"career-match/internal/models"
)

// TagExtractor turns answered questions into weighted tags.
type TagExtractor struct {
	ds            *dataset.Dataset
	defaultWeight float64
}

func NewTagExtractor(ds *dataset.Dataset, cfg Config) TagExtractor {
	return TagExtractor{ds: ds, defaultWeight: cfg.DefaultQuestionWeight}
}

// CategoryWeight is the weight applied to every tag a question of category contributes.
func (x TagExtractor) CategoryWeight(category models.QuestionCategory) float64 {
	if w, ok := x.ds.QuestionWeight(category); ok {
		return w
	}
	return x.defaultWeight
}

// ExtractAll builds the tag vector for a whole answer set. Answers are
// visited in question id order so accumulation is reproducible.
func (x TagExtractor) ExtractAll(answers models.Answers) (TagVector, []models.UnresolvedReference) {
	vector := make(TagVector)
	var unresolved []models.UnresolvedReference

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		q, ok := x.ds.Question(id)
		if !ok {
			unresolved = append(unresolved, models.UnresolvedReference{
				Kind:       models.UnresolvedUnknownQuestion,
				QuestionID: id,
			})
			continue
		}
		unresolved = append(unresolved, x.Extract(q, answers[id], vector)...)
	}
	return vector, unresolved
}

// Extract accumulates the tags of one answered question into vector and
// returns the parts of the answer that did not resolve. Misses never fail.
func (x TagExtractor) Extract(q models.Question, a models.Answer, vector TagVector) []models.UnresolvedReference {
	if a.IsEmpty() {
		return nil
	}
	weight := x.CategoryWeight(q.Category)

	switch q.Type {
	case models.QuestionTypeMultipleChoice:
		if a.IsList() {
			return []models.UnresolvedReference{shapeMismatch(q, "expected a single option id")}
		}
		return emitOption(q, a.Value(), weight, vector)

	case models.QuestionTypeMultipleSelect:
		var unresolved []models.UnresolvedReference
		for _, id := range a.Values() {
			unresolved = append(unresolved, emitOption(q, id, weight, vector)...)
		}
		return unresolved

	case models.QuestionTypeRanking:
		var unresolved []models.UnresolvedReference
		ranked := a.Values()
		n := float64(len(ranked))
		for i, id := range ranked {
			multiplier := (n - float64(i)) / n
			unresolved = append(unresolved, emitOption(q, id, weight*multiplier, vector)...)
		}
		return unresolved

	case models.QuestionTypeScale:
		if a.IsList() {
			return []models.UnresolvedReference{shapeMismatch(q, "expected a scale value")}
		}
		value, ok := ParseScaleValue(a.Value())
		if !ok {
			return []models.UnresolvedReference{{
				Kind:       models.UnresolvedInvalidScaleValue,
				QuestionID: q.ID,
				Value:      a.Value(),
			}}
		}
		tags, mapped := q.ScaleTags[value]
		if !mapped {
			if inScaleRange(q, value) {
				return nil
			}
			return []models.UnresolvedReference{{
				Kind:       models.UnresolvedUnmappedScaleValue,
				QuestionID: q.ID,
				Value:      a.Value(),
			}}
		}
		for _, tag := range tags {
			vector.Add(tag, weight)
		}
		return nil
	}

	return []models.UnresolvedReference{shapeMismatch(q, fmt.Sprintf("unsupported question type %q", q.Type))}
}

func emitOption(q models.Question, optionID string, weight float64, vector TagVector) []models.UnresolvedReference {
	opt, ok := q.Option(optionID)
	if !ok {
		return []models.UnresolvedReference{{
			Kind:       models.UnresolvedUnknownOption,
			QuestionID: q.ID,
			Value:      optionID,
		}}
	}
	for _, tag := range opt.Tags {
		vector.Add(tag, weight)
	}
	return nil
}

func shapeMismatch(q models.Question, detail string) models.UnresolvedReference {
	return models.UnresolvedReference{
		Kind:       models.UnresolvedInvalidAnswerShape,
		QuestionID: q.ID,
		Detail:     detail,
	}
}

// inScaleRange reports whether value is a legitimate answer that simply
// carries no tags, such as 0 on an experience scale.
func inScaleRange(q models.Question, value int) bool {
	if q.ScaleMax > q.ScaleMin {
		return value >= q.ScaleMin && value <= q.ScaleMax
	}
	return false
}

// ParseScaleValue reads a scale answer as an integer. Decimal input is
// truncated toward zero ("3.5" is 3).
func ParseScaleValue(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func sortUnresolved(refs []models.UnresolvedReference) {
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].QuestionID != refs[j].QuestionID {
			return refs[i].QuestionID < refs[j].QuestionID
		}
		if refs[i].Value != refs[j].Value {
			return refs[i].Value < refs[j].Value
		}
		return refs[i].Kind < refs[j].Kind
	})
}
