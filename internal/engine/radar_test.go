// internal/engine/radar_test.go
package engine

import (
	"testing"

	"career-match/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadarAggregator_EmptyVector(t *testing.T) {
	r := NewRadarAggregator(DefaultConfig())

	data := r.Aggregate(TagVector{}, nil)

	require.Len(t, data.Categories, 8)
	require.Len(t, data.Scores, 8)
	for _, s := range data.Scores {
		assert.Equal(t, 0.0, s)
	}
	assert.Nil(t, data.TopMatchBreakdown)
}

func TestRadarAggregator_AveragesOverAllRelevantTags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RadarDimensions = []models.RadarDimension{
		{Name: "Technical", Tags: []string{"programming", "statistics", "data analysis", "machine learning"}},
		{Name: "People", Tags: []string{"empathy"}},
	}
	r := NewRadarAggregator(cfg)

	data := r.Aggregate(TagVector{"programming": 4, "statistics": 2, "empathy": 4}, nil)

	assert.Equal(t, []string{"Technical", "People"}, data.Categories)
	// (4/4 + 2/4) / 4
	assert.InDelta(t, 0.375, data.Scores[0], 1e-9)
	assert.InDelta(t, 1.0, data.Scores[1], 1e-9)
}

func TestRadarAggregator_Bounds(t *testing.T) {
	r := NewRadarAggregator(DefaultConfig())

	vector := TagVector{}
	for _, dim := range DefaultConfig().RadarDimensions {
		for _, tag := range dim.Tags {
			vector.Add(tag, 0.5)
		}
	}
	vector.Add("programming", 40)

	data := r.Aggregate(vector, nil)
	assert.Equal(t, len(data.Categories), len(data.Scores))
	for _, s := range data.Scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestRadarAggregator_BreakdownIsCopied(t *testing.T) {
	r := NewRadarAggregator(DefaultConfig())
	breakdown := models.CategoryScores{Skills: 0.7, Values: 0.4, Temperament: 0.2}

	data := r.Aggregate(TagVector{}, &breakdown)
	breakdown.Skills = 0

	require.NotNil(t, data.TopMatchBreakdown)
	assert.Equal(t, 0.7, data.TopMatchBreakdown.Skills)
}
