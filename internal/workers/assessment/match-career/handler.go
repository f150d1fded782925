// internal/workers/assessment/match-career/handler.go
package matchcareer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career-match/internal/common/cache"
	"career-match/internal/common/config"
	"career-match/internal/common/errors"
	"career-match/internal/common/logger"
	"career-match/internal/common/metrics"
	"career-match/internal/common/observability"
	"career-match/internal/common/validation"
	"career-match/internal/engine"
	"career-match/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = registry.TaskTypeMatchCareer

type Handler struct {
	config       *Config
	engine       *engine.Engine
	validator    *validation.Validator
	cache        *cache.AssessmentCache
	obs          *observability.Observability
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Engine        *engine.Engine
	Cache         *cache.AssessmentCache // nil disables caching
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Engine == nil {
		return nil, fmt.Errorf("%s: engine is required", TaskType)
	}

	schema, err := registry.InputSchema(TaskType)
	if err != nil {
		return nil, err
	}
	validator, err := validation.NewValidator(schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TaskType, err)
	}

	loggerInstance := opts.Logger
	if loggerInstance == nil {
		loggerInstance = logger.NewStructured("info", "json")
	}
	obs := opts.Observability
	if obs == nil {
		obs = observability.Noop()
	}

	return &Handler{
		config:       workerConfig,
		engine:       opts.Engine,
		validator:    validator,
		cache:        opts.Cache,
		obs:          obs,
		logger:       loggerInstance,
		errorHandler: errors.NewErrorHandler(loggerInstance),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.logger.Debug("Processing match-career job", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
		"worker":             TaskType,
	})

	input, err := h.ParseInput([]byte(job.GetVariables()))
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, extractErrorCode(err)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	output, err := h.Execute(ctx, metrics.ChannelJob, input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, extractErrorCode(err)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

// ParseInput validates a raw request document against the registered input
// schema and decodes it.
func (h *Handler) ParseInput(data []byte) (*Input, error) {
	if !json.Valid(data) {
		return nil, errors.NewInvalidAnswersFormatError("request body is not valid JSON")
	}

	result, err := h.validator.ValidateBytes(data)
	if err != nil {
		return nil, errors.NewInvalidAnswersFormatError(err.Error())
	}
	if !result.Valid {
		return nil, errors.NewInputValidationFailedError(result.Messages())
	}

	var input Input
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, errors.NewInvalidAnswersFormatError(err.Error())
	}
	return &input, nil
}

// Execute produces the assessment for input, serving it from the cache when
// one is configured and holds it.
func (h *Handler) Execute(ctx context.Context, channel string, input *Input) (*Output, error) {
	startTime := time.Now()
	if input.RequestID == "" {
		input.RequestID = uuid.NewString()
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewAssessmentFailedError(err)
	}

	opts := engine.Options{Limit: input.Limit, IncludeGaps: input.IncludeGaps}
	if opts.Limit <= 0 {
		opts.Limit = h.engine.Config().TopN
	}
	version := h.engine.Dataset().Version()

	var cacheKey string
	if h.cache != nil {
		key, err := h.cache.Key(version, cacheRequest{Answers: input.Answers, Limit: opts.Limit, IncludeGaps: opts.IncludeGaps})
		if err != nil {
			h.logger.Warn("assessment cache key failed", map[string]interface{}{
				"requestId": input.RequestID,
				"error":     err,
			})
		} else {
			cacheKey = key
			if cached, ok := h.cache.Get(ctx, key); ok {
				output := &Output{RequestID: input.RequestID, Cached: true, Assessment: cached}
				h.record(ctx, channel, output, time.Since(startTime))
				return output, nil
			}
		}
	}

	assessment := h.engine.Assess(input.Answers, opts)

	if cacheKey != "" {
		h.cache.Set(ctx, cacheKey, assessment)
	}

	output := &Output{RequestID: input.RequestID, Assessment: assessment}
	h.record(ctx, channel, output, time.Since(startTime))
	return output, nil
}

type cacheRequest struct {
	Answers     interface{} `json:"answers"`
	Limit       int         `json:"limit"`
	IncludeGaps bool        `json:"includeGaps"`
}

func (h *Handler) record(ctx context.Context, channel string, output *Output, elapsed time.Duration) {
	a := output.Assessment
	metrics.ObserveAssessment(channel, a, elapsed)
	h.obs.RecordAssessment(ctx, channel, string(a.Status))
	h.obs.RecordDuration(ctx, elapsed, channel)

	fields := map[string]interface{}{
		"requestId":      output.RequestID,
		"channel":        channel,
		"datasetVersion": a.DatasetVersion,
		"status":         string(a.Status),
		"matches":        len(a.Matches),
		"disqualified":   len(a.Diagnostics.Disqualified),
		"unresolved":     len(a.Diagnostics.Unresolved),
		"cached":         output.Cached,
		"durationMs":     float64(elapsed.Microseconds()) / 1000,
	}
	if h.config.SlowThreshold > 0 && elapsed > h.config.SlowThreshold {
		h.logger.Warn("slow assessment", fields)
		return
	}
	h.logger.Info("assessment completed", fields)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	request, err := client.NewCompleteJobCommand().JobKey(job.GetKey()).VariablesFromObject(newJobVariables(output))
	if err != nil {
		h.logger.Error("Failed to create complete job command", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
			"worker": TaskType,
		})
		return
	}

	if _, err := request.Send(ctx); err != nil {
		h.logger.Error("Failed to complete job", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
			"worker": TaskType,
		})
	}
}

// Ready reports whether the handler can serve: the cache, when configured,
// must answer a ping.
func (h *Handler) Ready(ctx context.Context) error {
	if h.cache == nil {
		return nil
	}
	if err := h.cache.Ping(ctx); err != nil {
		return errors.NewCacheUnavailableError(err)
	}
	return nil
}

func (h *Handler) Engine() *engine.Engine {
	return h.engine
}

func (h *Handler) GetTaskType() string {
	return TaskType
}

func (h *Handler) IsEnabled() bool {
	return h.config.Enabled
}

func (h *Handler) GetConfig() *Config {
	return h.config
}

func extractErrorCode(err error) string {
	return string(errors.AsStandardError(err).Code)
}
