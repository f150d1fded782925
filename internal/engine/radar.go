// internal/engine/radar.go
package engine

import "career-match/internal/models"

// RadarAggregator projects a tag vector onto the chart dimensions.
type RadarAggregator struct {
	dimensions []models.RadarDimension
}

func NewRadarAggregator(cfg Config) RadarAggregator {
	return RadarAggregator{dimensions: cfg.RadarDimensions}
}

// Aggregate scores each dimension as the normalised weight of its tags
// averaged over all of them, so unmatched tags pull the score down.
// breakdown, when non-nil, is attached for the top match overlay.
func (r RadarAggregator) Aggregate(vector TagVector, breakdown *models.CategoryScores) models.RadarData {
	data := models.RadarData{
		Categories: make([]string, 0, len(r.dimensions)),
		Scores:     make([]float64, 0, len(r.dimensions)),
	}
	maxTagValue := vector.Max()

	for _, dim := range r.dimensions {
		score := 0.0
		if len(dim.Tags) > 0 {
			sum := 0.0
			for _, tag := range dim.Tags {
				sum += vector[tag] / maxTagValue
			}
			score = sum / float64(len(dim.Tags))
		}
		data.Categories = append(data.Categories, dim.Name)
		data.Scores = append(data.Scores, clamp01(score))
	}

	if breakdown != nil {
		copied := *breakdown
		data.TopMatchBreakdown = &copied
	}
	return data
}
