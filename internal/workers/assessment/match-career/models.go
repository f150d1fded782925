// internal/workers/assessment/match-career/models.go
package matchcareer

import "career-match/internal/models"

// Input is the request document shared by the job worker, the HTTP API and
// the CLI. Job variables may carry unrelated process variables; they are ignored.
type Input struct {
	Answers     models.Answers `json:"answers"`
	Limit       int            `json:"limit,omitempty"`
	IncludeGaps bool           `json:"includeGaps,omitempty"`

	// RequestID correlates log lines; it is never part of the cache key.
	RequestID string `json:"-"`
}

type Output struct {
	RequestID  string            `json:"requestId"`
	Cached     bool              `json:"cached"`
	Assessment models.Assessment `json:"assessment"`
}

// jobVariables is what a completed job writes back to the process.
type jobVariables struct {
	RequestID        string                  `json:"matchRequestId"`
	AssessmentStatus models.AssessmentStatus `json:"assessmentStatus"`
	TopCareerID      string                  `json:"topCareerId,omitempty"`
	Assessment       models.Assessment       `json:"assessment"`
}

func newJobVariables(out *Output) jobVariables {
	vars := jobVariables{
		RequestID:        out.RequestID,
		AssessmentStatus: out.Assessment.Status,
		Assessment:       out.Assessment,
	}
	if len(out.Assessment.Matches) > 0 {
		vars.TopCareerID = out.Assessment.Matches[0].CareerID
	}
	return vars
}
