// Package errors provides standardized error handling for the HTTP and
// workflow boundaries of the assessment service.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidAnswersFormat  ErrorCode = "INVALID_ANSWERS_FORMAT"
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"

	ErrCodeDatasetLoadFailed ErrorCode = "DATASET_LOAD_FAILED"
	ErrCodeDatasetInvalid    ErrorCode = "DATASET_INVALID"

	ErrCodeAssessmentFailed ErrorCode = "ASSESSMENT_FAILED"
	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// HTTPStatus maps the error code to the status returned by the HTTP boundary.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeInvalidAnswersFormat, ErrCodeInputValidationFailed:
		return http.StatusBadRequest
	case ErrCodeCacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AsStandardError unwraps err into a StandardError, wrapping unknown errors
// as INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewInvalidAnswersFormatError is returned when the request body is not a JSON document with an answers object.
func NewInvalidAnswersFormatError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAnswersFormat,
		Message:   "Invalid answers format",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputValidationFailedError carries every schema violation in Metadata["errors"].
func NewInputValidationFailedError(violations []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Request failed schema validation",
		Details:   strings.Join(violations, "; "),
		Retryable: false,
		Metadata:  map[string]interface{}{"errors": violations},
		Timestamp: time.Now().UTC(),
	}
}

func NewDatasetLoadFailedError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatasetLoadFailed,
		Message:   fmt.Sprintf("Failed to load dataset from %s", source),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewDatasetInvalidError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatasetInvalid,
		Message:   "Dataset failed validation",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewAssessmentFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssessmentFailed,
		Message:   "Assessment could not be computed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Result cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the error codes modelled in the process.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidAnswersFormat:  "INVALID_ANSWERS",
	ErrCodeInputValidationFailed: "INVALID_ANSWERS",
	ErrCodeDatasetLoadFailed:     "DATASET_UNAVAILABLE",
	ErrCodeDatasetInvalid:        "DATASET_UNAVAILABLE",
	ErrCodeAssessmentFailed:      "ASSESSMENT_FAILED",
	ErrCodeCacheUnavailable:      "ASSESSMENT_FAILED",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatasetLoadFailed:
		return 3
	case ErrCodeCacheUnavailable:
		return 2
	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "DATASET"):
		return "DATASET"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "ASSESSMENT"):
		return "ASSESSMENT"
	default:
		return "OTHER"
	}
}
