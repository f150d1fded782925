// internal/dataset/profile.go
package dataset

import (
	"fmt"

	"career-match/internal/models"
)

// MinimalProfile is the generic profile for catalog careers the taxonomy does
// not describe, so every catalog career stays scoreable.
func MinimalProfile(entry models.CatalogEntry) models.CareerProfile {
	return models.CareerProfile{
		ID:              entry.ID,
		Name:            entry.Name,
		Category:        "General",
		Description:     fmt.Sprintf("Career path for %s", entry.Name),
		DomainExpertise: []string{models.ExpertiseAny},
		Skills: models.SkillSet{
			Required: []string{"analytical thinking", "communication", "problem-solving"},
			ComplexityLevels: map[string]string{
				"analytical thinking": "intermediate",
				"communication":       "basic",
				"problem-solving":     "intermediate",
			},
		},
		Values:      []string{"impact", "growth", "innovation"},
		Temperament: []string{"analytical", "organized", "adaptable"},
	}
}
