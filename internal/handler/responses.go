package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// APIError is the body of every failure response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Retryable bool              `json:"retryable"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// ErrorResponse wraps APIError as {"error": {...}}
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends the error envelope
func respondError(w http.ResponseWriter, status int, code, message string, retryable bool) {
	respondJSON(w, status, ErrorResponse{Error: APIError{Code: code, Message: message, Retryable: retryable}})
}

// WriteError sends the error envelope from outside the handler package,
// e.g. from middleware that rejects a request before routing.
func WriteError(w http.ResponseWriter, status int, code, message string, retryable bool) {
	respondError(w, status, code, message, retryable)
}

// errorMapping is how one domain error is reported over HTTP
type errorMapping struct {
	target    error
	status    int
	code      string
	retryable bool
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{domain.ErrCategoryRequired, http.StatusBadRequest, CodeCategoryRequired, false},
	{domain.ErrPrizesRequired, http.StatusBadRequest, CodePrizesRequired, false},
	{domain.ErrInvalidCount, http.StatusBadRequest, CodeInvalidCount, false},
	{domain.ErrNoCandidates, http.StatusConflict, CodeNoCandidates, false},
	{domain.ErrInsufficientCandidates, http.StatusUnprocessableEntity, CodeInsufficientCandidates, false},
	{domain.ErrPersistFailed, http.StatusServiceUnavailable, CodePersistFailed, true},

	{domain.ErrCSVRequired, http.StatusBadRequest, CodeCSVRequired, false},
	{domain.ErrCSVNoData, http.StatusBadRequest, CodeCSVNoData, false},
	{domain.ErrNoValidRows, http.StatusUnprocessableEntity, CodeNoValidRows, false},

	{domain.ErrInvalidExportType, http.StatusBadRequest, CodeInvalidExportType, false},

	{domain.ErrCategoryNotFound, http.StatusNotFound, CodeNotFound, false},
	{domain.ErrParticipantNotFound, http.StatusNotFound, CodeNotFound, false},
	{domain.ErrCategoryInUse, http.StatusConflict, CodeCategoryInUse, false},
	{domain.ErrNameRequired, http.StatusBadRequest, CodeInvalidRequest, false},
	{domain.ErrInvalidExtraInfo, http.StatusBadRequest, CodeInvalidExtraInfo, false},
	{domain.ErrInvalidInput, http.StatusBadRequest, CodeInvalidRequest, false},
}

// mapServiceError maps a service error to status, code and retryability.
// ok is false for errors with no domain meaning.
func mapServiceError(err error) (status int, code string, retryable bool, ok bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code, m.retryable, true
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return StatusClientClosedRequest, CodeRequestCanceled, true, true
	}
	return 0, "", false, false
}

// respondServiceError logs err and writes its envelope. Unmapped errors are
// storage failures: they are reported with fallbackCode as retryable 503s
// and a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error, fallbackCode, fallbackMsg string) {
	log := logger.FromContext(r.Context())

	status, code, retryable, ok := mapServiceError(err)
	if !ok {
		log.Error(opName+" failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, fallbackCode, fallbackMsg, true)
		return
	}

	message := err.Error()
	switch code {
	case CodePersistFailed:
		log.Error(opName+" failed", "error", err)
		message = ErrMsgPersistFailed
	case CodeRequestCanceled:
		log.Warn(opName+" canceled", "error", err)
		message = ErrMsgRequestCanceled
	default:
		log.Warn(opName+" rejected", "code", code, "error", err)
	}
	respondError(w, status, code, message, retryable)
}
