package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LuckyDraw_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// When it returns an error the response has already been written and the
// handler should return. codeFor picks the error code for a validation
// failure from the first failing field; nil means CodeInvalidRequest.
//
// Example usage:
//
//	var req CreateCategoryRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpCreateCategory, nil); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, codeFor func(field string) string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Warn(fmt.Sprintf("%s request too large", actionName), "limit", maxErr.Limit)
			respondError(w, http.StatusRequestEntityTooLarge, CodeRequestTooLarge, ErrMsgRequestTooLarge, false)
			return err
		}
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, ErrMsgInvalidRequest, false)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		code := CodeInvalidRequest
		if codeFor != nil {
			if c := codeFor(firstInvalidField(err)); c != "" {
				code = c
			}
		}
		log.Warn(fmt.Sprintf("%s request invalid", actionName), "code", code, "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: APIError{
			Code:    code,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		}})
		return err
	}

	return nil
}

// GetPathParam returns a required chi URL parameter, writing a 400 when it is empty
func GetPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf(ErrMsgMissingPathParam, name), false)
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the trimmed query parameter or nil when absent
func GetOptionalQueryParam(r *http.Request, name string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil
	}
	return &value
}

// parseBoolQuery parses an optional boolean query parameter
func parseBoolQuery(r *http.Request, w http.ResponseWriter, name string) (bool, bool) {
	raw := GetOptionalQueryParam(r, name)
	if raw == nil {
		return false, true
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name), false)
		return false, false
	}
	return v, true
}

// parseTimeQuery parses an optional RFC3339 timestamp query parameter
func parseTimeQuery(r *http.Request, w http.ResponseWriter, name string) (*time.Time, bool) {
	raw := GetOptionalQueryParam(r, name)
	if raw == nil {
		return nil, true
	}
	v, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name), false)
		return nil, false
	}
	return &v, true
}

// parseIntQuery parses an optional non-negative integer query parameter
func parseIntQuery(r *http.Request, w http.ResponseWriter, name string) (int, bool) {
	raw := GetOptionalQueryParam(r, name)
	if raw == nil {
		return 0, true
	}
	v, err := strconv.Atoi(*raw)
	if err != nil || v < 0 {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name), false)
		return 0, false
	}
	return v, true
}
