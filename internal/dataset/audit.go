// internal/dataset/audit.go
package dataset

import (
	"sort"

	"career-match/internal/models"
)

// TagReference points at a tag no question can emit.
type TagReference struct {
	Owner string `json:"owner"` // career id or radar dimension
	Tag   string `json:"tag"`
}

// AuditReport lists vocabulary drift between the questionnaire, the taxonomy,
// the catalog and the radar dimensions. Drift never fails loading; it makes
// scores quietly lower, so it is reported instead.
type AuditReport struct {
	Version                 string         `json:"version"`
	UnreachableProfileTags  []TagReference `json:"unreachableProfileTags"`
	UnreachableRadarTags    []TagReference `json:"unreachableRadarTags"`
	UnknownComplexityLevels []TagReference `json:"unknownComplexityLevels"`
	MinimalProfileCareers   []string       `json:"minimalProfileCareers"`
	UncatalogedProfiles     []string       `json:"uncatalogedProfiles"`
	OrphanKnockoutRules     []string       `json:"orphanKnockoutRules"`
}

// Clean reports whether the audit found nothing.
func (r AuditReport) Clean() bool {
	return len(r.UnreachableProfileTags) == 0 &&
		len(r.UnreachableRadarTags) == 0 &&
		len(r.UnknownComplexityLevels) == 0 &&
		len(r.MinimalProfileCareers) == 0 &&
		len(r.UncatalogedProfiles) == 0 &&
		len(r.OrphanKnockoutRules) == 0
}

// EmittableTags returns every tag some answer can contribute.
func (d *Dataset) EmittableTags() map[string]struct{} {
	tags := make(map[string]struct{})
	for _, q := range d.docs.Questionnaire.Questions {
		for _, tag := range q.EmittedTags() {
			tags[tag] = struct{}{}
		}
	}
	return tags
}

// Audit cross-checks the dataset vocabulary against itself and radar.
func (d *Dataset) Audit(radar []models.RadarDimension) AuditReport {
	report := AuditReport{
		Version:                 d.version,
		UnreachableProfileTags:  []TagReference{},
		UnreachableRadarTags:    []TagReference{},
		UnknownComplexityLevels: []TagReference{},
		MinimalProfileCareers:   []string{},
		UncatalogedProfiles:     []string{},
		OrphanKnockoutRules:     []string{},
	}
	emittable := d.EmittableTags()

	catalog := make(map[string]struct{}, len(d.docs.Catalog.Careers))
	for _, entry := range d.docs.Catalog.Careers {
		catalog[entry.ID] = struct{}{}

		profile, curated := d.ResolveProfile(entry)
		if !curated {
			report.MinimalProfileCareers = append(report.MinimalProfileCareers, entry.ID)
		}
		seen := make(map[string]struct{})
		for _, tag := range profile.Tags() {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			if _, ok := emittable[tag]; !ok {
				report.UnreachableProfileTags = append(report.UnreachableProfileTags, TagReference{Owner: entry.ID, Tag: tag})
			}
		}
		for skill, level := range profile.Skills.ComplexityLevels {
			if _, ok := d.ComplexityMultiplier(level); !ok {
				report.UnknownComplexityLevels = append(report.UnknownComplexityLevels, TagReference{Owner: entry.ID, Tag: skill + "=" + level})
			}
		}
	}

	for _, p := range d.docs.Taxonomy.Careers {
		if _, ok := catalog[p.ID]; !ok {
			report.UncatalogedProfiles = append(report.UncatalogedProfiles, p.ID)
		}
	}
	for careerID := range d.docs.Questionnaire.KnockoutRules {
		if _, ok := catalog[careerID]; !ok {
			report.OrphanKnockoutRules = append(report.OrphanKnockoutRules, careerID)
		}
	}

	for _, dim := range radar {
		for _, tag := range dim.Tags {
			if _, ok := emittable[tag]; !ok {
				report.UnreachableRadarTags = append(report.UnreachableRadarTags, TagReference{Owner: dim.Name, Tag: tag})
			}
		}
	}

	sort.Slice(report.UnknownComplexityLevels, func(i, j int) bool {
		a, b := report.UnknownComplexityLevels[i], report.UnknownComplexityLevels[j]
		if a.Owner != b.Owner {
			return a.Owner < b.Owner
		}
		return a.Tag < b.Tag
	})
	sort.Strings(report.UncatalogedProfiles)
	sort.Strings(report.OrphanKnockoutRules)
	return report
}
