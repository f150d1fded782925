// internal/engine/domain.go
package engine

import (
	"career-match/internal/dataset"
	"career-match/internal/models"
)

// domainMarkers maps option tags to domains. Earlier rows win when an option
// carries more than one marker.
var domainMarkers = []struct {
	tag    string
	domain models.Domain
}{
	{"life_sciences_domain", models.DomainLifeSciences},
	{"physical_sciences_domain", models.DomainPhysicalSciences},
	{"engineering_domain", models.DomainEngineering},
	{"mathematical_domain", models.DomainMathematical},
	{"interdisciplinary_domain", models.DomainInterdisciplinary},
	{"social_sciences_domain", models.DomainSocialSciences},
}

// ClassifyDomain reads the user's domain from the designated domain question.
func ClassifyDomain(ds *dataset.Dataset, answers models.Answers) models.Domain {
	q, ok := ds.Question(ds.DomainQuestionID())
	if !ok {
		return models.DomainNone
	}
	answer, ok := answers[q.ID]
	if !ok || answer.IsEmpty() || answer.IsList() {
		return models.DomainNone
	}
	opt, ok := q.Option(answer.Value())
	if !ok {
		return models.DomainNone
	}
	return domainFromTags(opt.Tags)
}

func domainFromTags(tags []string) models.Domain {
	for _, marker := range domainMarkers {
		for _, tag := range tags {
			if tag == marker.tag {
				return marker.domain
			}
		}
	}
	return models.DomainNone
}

func isDomainMarker(tag string) bool {
	for _, marker := range domainMarkers {
		if tag == marker.tag {
			return true
		}
	}
	return false
}
