package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantCode      string
		wantRetryable bool
		wantOK        bool
	}{
		{"wrapped validation", fmt.Errorf("draw: %w", domain.ErrInvalidCount), http.StatusBadRequest, CodeInvalidCount, false, true},
		{"persist beats cancellation", fmt.Errorf("%w: %w", domain.ErrPersistFailed, context.Canceled), http.StatusServiceUnavailable, CodePersistFailed, true, true},
		{"canceled", fmt.Errorf("abandoned: %w", context.Canceled), StatusClientClosedRequest, CodeRequestCanceled, true, true},
		{"deadline", context.DeadlineExceeded, StatusClientClosedRequest, CodeRequestCanceled, true, true},
		{"name required", domain.ErrNameRequired, http.StatusBadRequest, CodeInvalidRequest, false, true},
		{"extra info schema", fmt.Errorf("%w: /: required", domain.ErrInvalidExtraInfo), http.StatusBadRequest, CodeInvalidExtraInfo, false, true},
		{"unknown", assert.AnError, 0, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, retryable, ok := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantRetryable, retryable)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestRespondServiceError_EchoesDomainMessage(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(w, req, "test", fmt.Errorf("%w: requested 3, available 1", domain.ErrInsufficientCandidates), CodePersistFailed, ErrMsgPersistFailed)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	apiErr := decodeError(t, w)
	assert.Contains(t, apiErr.Message, "requested 3, available 1")
	assert.False(t, apiErr.Retryable)
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
