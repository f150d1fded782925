// internal/engine/scorer_test.go
package engine

import (
	"math/rand"
	"sort"
	"testing"

	"career-match/internal/dataset"
	"career-match/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProfile(t *testing.T, ds *dataset.Dataset, id string) models.CareerProfile {
	t.Helper()
	p, ok := ds.Profile(id)
	require.True(t, ok, "profile %s", id)
	return p
}

func TestCareerScorer_WorkedExample(t *testing.T) {
	ds := fixtureDataset(t)
	s := NewCareerScorer(ds, DefaultConfig())

	vector := TagVector{"programming": 3, "statistics": 1.5, "beta": 1, "calm": 1}
	result := s.Score(fixtureProfile(t, ds, "engineer"), vector, models.DomainMathematical)

	// programming 3/3 * min(1.8, 1.5) plus statistics 1.5/3, over 2 skills, clamps to 1
	assert.Equal(t, 1.0, result.CategoryScores.Skills)
	assert.InDelta(t, 1.0/3.0, result.CategoryScores.Values, 1e-9)
	assert.InDelta(t, 1.0/3.0, result.CategoryScores.Temperament, 1e-9)
	assert.InDelta(t, 0.3, result.DomainBonus, 1e-9)

	total := 1.0*0.6 + (1.0/3.0)*0.2 + (1.0/3.0)*0.2
	assert.InDelta(t, total*1.3, result.TotalScore, 1e-9)
}

func TestCareerScorer_EmptyVector(t *testing.T) {
	ds := fixtureDataset(t)
	s := NewCareerScorer(ds, DefaultConfig())

	for _, entry := range ds.Catalog() {
		profile, _ := ds.ResolveProfile(entry)
		result := s.Score(profile, TagVector{}, models.DomainMathematical)

		assert.Equal(t, models.CategoryScores{}, result.CategoryScores, entry.ID)
		assert.Equal(t, 0.0, result.TotalScore, entry.ID)
	}
}

func TestCareerScorer_UnmatchedSkillsCountInDenominator(t *testing.T) {
	ds := fixtureDataset(t)
	s := NewCareerScorer(ds, DefaultConfig())

	result := s.Score(fixtureProfile(t, ds, "speaker"), TagVector{"communication": 2}, models.DomainNone)

	assert.InDelta(t, 0.5, result.CategoryScores.Skills, 1e-9)
	assert.Equal(t, 0.0, result.CategoryScores.Temperament)
	assert.InDelta(t, 0.5*0.6, result.TotalScore, 1e-9)
}

func TestCareerScorer_DomainBonus(t *testing.T) {
	ds := fixtureDataset(t)
	s := NewCareerScorer(ds, DefaultConfig())

	tests := []struct {
		name      string
		expertise []string
		domain    models.Domain
		want      float64
	}{
		{"configured multiplier", []string{"mathematical"}, models.DomainMathematical, 0.3},
		{"no domain", []string{"mathematical"}, models.DomainNone, 0},
		{"domain not listed", []string{"mathematical"}, models.DomainLifeSciences, 0},
		{"any sentinel", []string{"any"}, models.DomainLifeSciences, 0.15},
		{"any_technical sentinel", []string{"any_technical"}, models.DomainEngineering, 0.15},
		{"unconfigured multiplier uses default", []string{"social_sciences"}, models.DomainSocialSciences, DefaultConfig().DefaultDomainBonus},
		{"sentinel never matches none", []string{"any"}, models.DomainNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.CareerProfile{ID: "p", DomainExpertise: tt.expertise}
			assert.InDelta(t, tt.want, s.DomainBonus(profile, tt.domain), 1e-9)
		})
	}
}

func TestCareerScorer_CategoryWeights(t *testing.T) {
	ds := fixtureDataset(t)
	cfg := DefaultConfig()
	s := NewCareerScorer(ds, cfg)

	assert.Equal(t, models.CategoryWeights{Skills: 0.6, Values: 0.2, Temperament: 0.2}, s.CategoryWeights("Technology"))
	assert.Equal(t, cfg.DefaultCategoryWeights, s.CategoryWeights("Life Science"))
	assert.Equal(t, cfg.DefaultCategoryWeights, s.CategoryWeights(""))

	for key, weights := range ds.CareerCategories() {
		assert.Equal(t, weights, s.CategoryWeights(key), key)
	}
}

func TestCareerScorer_ComplexityMultiplier(t *testing.T) {
	s := NewCareerScorer(fixtureDataset(t), DefaultConfig())

	assert.Equal(t, 1.0, s.complexityMultiplier(""))
	assert.Equal(t, 1.0, s.complexityMultiplier("legendary"))
	assert.Equal(t, 1.5, s.complexityMultiplier("advanced"))
	assert.Equal(t, 1.5, s.complexityMultiplier("expert"), "capped")
}

func TestCareerScorer_TagMonotonicity(t *testing.T) {
	ds := fixtureDataset(t)
	s := NewCareerScorer(ds, DefaultConfig())
	profile := fixtureProfile(t, ds, "speaker")

	// the strongest tag stays fixed, so only the listed tag moves
	vector := TagVector{"anchor": 4, "communication": 0.5}
	previous := s.Score(profile, vector, models.DomainNone).CategoryScores.Skills

	for i := 0; i < 6; i++ {
		vector.Add("communication", 0.5)
		current := s.Score(profile, vector, models.DomainNone).CategoryScores.Skills
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
}

func TestCareerScorer_Bounds(t *testing.T) {
	ds := embeddedDataset(t)
	s := NewCareerScorer(ds, DefaultConfig())
	var tags []string
	for tag := range ds.EmittableTags() {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		vector := TagVector{}
		n := rng.Intn(40)
		for j := 0; j < n; j++ {
			vector.Add(tags[rng.Intn(len(tags))], rng.Float64()*6)
		}
		domain := models.Domains[rng.Intn(len(models.Domains))]

		for _, entry := range ds.Catalog() {
			profile, _ := ds.ResolveProfile(entry)
			result := s.Score(profile, vector, domain)
			for _, v := range []float64{result.CategoryScores.Skills, result.CategoryScores.Values, result.CategoryScores.Temperament, result.TotalScore} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
			assert.GreaterOrEqual(t, result.DomainBonus, 0.0)
		}
	}
}
