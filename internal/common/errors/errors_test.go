// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *StandardError
		want int
	}{
		{"invalid answers", NewInvalidAnswersFormatError("answers must be an object"), http.StatusBadRequest},
		{"schema violations", NewInputValidationFailedError([]string{"answers: is required"}), http.StatusBadRequest},
		{"cache", NewCacheUnavailableError(fmt.Errorf("dial tcp")), http.StatusServiceUnavailable},
		{"dataset", NewDatasetInvalidError(fmt.Errorf("duplicate question")), http.StatusInternalServerError},
		{"assessment", NewAssessmentFailedError(fmt.Errorf("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAsStandardError(t *testing.T) {
	assert.Nil(t, AsStandardError(nil))

	original := NewDatasetLoadFailedError("file", fmt.Errorf("no such file"))
	wrapped := fmt.Errorf("boot: %w", original)
	assert.Same(t, original, AsStandardError(wrapped))

	plain := AsStandardError(fmt.Errorf("unexpected"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "unexpected", plain.Details)
}

func TestInputValidationFailedError_CarriesViolations(t *testing.T) {
	err := NewInputValidationFailedError([]string{"answers: Invalid type", "limit: Must be greater than or equal to 1"})

	assert.Equal(t, "answers: Invalid type; limit: Must be greater than or equal to 1", err.Details)
	assert.Len(t, err.Metadata["errors"], 2)
	assert.False(t, err.Retryable)
}

func TestConvertToBPMNError(t *testing.T) {
	t.Run("validation errors are not retried", func(t *testing.T) {
		bpmn := ConvertToBPMNError(NewInvalidAnswersFormatError("missing answers"))
		assert.Equal(t, "INVALID_ANSWERS", bpmn.Code)
		assert.Equal(t, 0, bpmn.Retries)
		assert.Equal(t, "INVALID_ANSWERS_FORMAT", bpmn.ToErrorVariables()["originalErrorCode"])
	})

	t.Run("dataset load failures are retried", func(t *testing.T) {
		bpmn := ConvertToBPMNError(NewDatasetLoadFailedError("postgres", fmt.Errorf("timeout")))
		assert.Equal(t, "DATASET_UNAVAILABLE", bpmn.Code)
		assert.Equal(t, 3, bpmn.Retries)
		assert.True(t, bpmn.Retryable)
	})

	t.Run("unmapped codes pass through", func(t *testing.T) {
		bpmn := ConvertToBPMNError(AsStandardError(fmt.Errorf("boom")))
		assert.Equal(t, "INTERNAL_ERROR", bpmn.Code)
	})
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "DATASET", GetErrorCategory(ErrCodeDatasetInvalid))
	assert.Equal(t, "CACHE", GetErrorCategory(ErrCodeCacheUnavailable))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInputValidationFailed))
	assert.Equal(t, "ASSESSMENT", GetErrorCategory(ErrCodeAssessmentFailed))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
	assert.True(t, IsRetryableErrorCode(ErrCodeCacheUnavailable))
	assert.False(t, IsRetryableErrorCode(ErrCodeAssessmentFailed))
}
