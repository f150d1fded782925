// internal/api/handlers.go
package api

import (
	stderrors "errors"
	"fmt"
	"time"

	apperrors "career-match/internal/common/errors"
	"career-match/internal/common/metrics"
	"career-match/internal/dataset"
	"career-match/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []string `json:"details"`
}

type QuestionsResponse struct {
	Version        string            `json:"version"`
	DomainQuestion string            `json:"domainQuestion"`
	Questions      []models.Question `json:"questions"`
}

type CareerSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Curated     bool   `json:"curated"`
}

type CareersResponse struct {
	Version string          `json:"version"`
	Careers []CareerSummary `json:"careers"`
}

// POST /api/v1/match-career
func (s *Server) matchCareer(c *fiber.Ctx) error {
	input, err := s.handler.ParseInput(c.Body())
	if err != nil {
		return err
	}
	input.RequestID = requestIDFrom(c)

	output, err := s.handler.Execute(c.UserContext(), metrics.ChannelHTTP, input)
	if err != nil {
		return err
	}

	if output.Cached {
		c.Set(HeaderCache, "HIT")
	} else {
		c.Set(HeaderCache, "MISS")
	}
	return c.JSON(output.Assessment)
}

// GET /api/v1/questions
func (s *Server) questions(c *fiber.Ctx) error {
	ds := s.handler.Engine().Dataset()
	return c.JSON(QuestionsResponse{
		Version:        ds.Version(),
		DomainQuestion: ds.DomainQuestionID(),
		Questions:      ds.Questions(),
	})
}

// GET /api/v1/careers
func (s *Server) careers(c *fiber.Ctx) error {
	return c.JSON(SummarizeCareers(s.handler.Engine().Dataset()))
}

// SummarizeCareers lists every catalog entry with its resolved profile.
func SummarizeCareers(ds *dataset.Dataset) CareersResponse {
	catalog := ds.Catalog()

	resp := CareersResponse{Version: ds.Version(), Careers: make([]CareerSummary, 0, len(catalog))}
	for _, entry := range catalog {
		profile, curated := ds.ResolveProfile(entry)
		resp.Careers = append(resp.Careers, CareerSummary{
			ID:          entry.ID,
			Name:        profile.Name,
			Category:    profile.Category,
			Description: profile.Description,
			Curated:     curated,
		})
	}
	return resp
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) ready(c *fiber.Ctx) error {
	if err := s.handler.Ready(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not_ready",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":         "ready",
		"datasetVersion": s.handler.Engine().Dataset().Version(),
	})
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		return c.Status(fe.Code).JSON(ErrorResponse{
			Error:   fe.Message,
			Code:    fmt.Sprintf("HTTP_%d", fe.Code),
			Details: []string{},
		})
	}

	stdErr := apperrors.AsStandardError(err)
	status := stdErr.HTTPStatus()

	details, ok := stdErr.Metadata["errors"].([]string)
	if !ok {
		details = []string{}
		if stdErr.Details != "" {
			details = append(details, stdErr.Details)
		}
	}

	fields := map[string]interface{}{
		"requestId": requestIDFrom(c),
		"path":      c.Path(),
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
	}
	if status >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", fields)
	} else {
		s.logger.Info("request rejected", fields)
	}

	return c.Status(status).JSON(ErrorResponse{
		Error:   stdErr.Message,
		Code:    string(stdErr.Code),
		Details: details,
	})
}
