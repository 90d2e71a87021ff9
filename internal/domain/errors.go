package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Draw validation errors
	ErrMsgCategoryRequired = "category id is required"
	ErrMsgPrizesRequired   = "at least one prize name is required"
	ErrMsgInvalidCount     = "winner count must be greater than 0"

	// Draw state errors
	ErrMsgNoCandidates           = "no active participants in category"
	ErrMsgInsufficientCandidates = "not enough active participants for requested winner count"

	// Persistence errors
	ErrMsgPersistFailed = "failed to persist draw records"

	// Import errors
	ErrMsgCSVRequired = "csv data is required"
	ErrMsgCSVNoData   = "csv must contain a header row and at least one data row"
	ErrMsgNoValidRows = "no valid participant rows to import"

	// Export errors
	ErrMsgInvalidExportType = "unsupported export type"

	// Roster errors
	ErrMsgCategoryNotFound    = "category not found"
	ErrMsgParticipantNotFound = "participant not found"
	ErrMsgCategoryInUse       = "category still has active participants"
	ErrMsgNameRequired        = "name is required"
	ErrMsgInvalidExtraInfo    = "extra info does not match schema"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors (no side effects, caller may retry with corrected input)
	ErrCategoryRequired = errors.New(ErrMsgCategoryRequired)
	ErrPrizesRequired   = errors.New(ErrMsgPrizesRequired)
	ErrInvalidCount     = errors.New(ErrMsgInvalidCount)

	// State errors (no side effects, not retryable until data changes)
	ErrNoCandidates           = errors.New(ErrMsgNoCandidates)
	ErrInsufficientCandidates = errors.New(ErrMsgInsufficientCandidates)

	// Persistence errors (nothing committed, whole draw may be retried)
	ErrPersistFailed = errors.New(ErrMsgPersistFailed)

	// Import errors
	ErrCSVRequired = errors.New(ErrMsgCSVRequired)
	ErrCSVNoData   = errors.New(ErrMsgCSVNoData)
	ErrNoValidRows = errors.New(ErrMsgNoValidRows)

	// Export errors
	ErrInvalidExportType = errors.New(ErrMsgInvalidExportType)

	// Roster errors
	ErrCategoryNotFound    = errors.New(ErrMsgCategoryNotFound)
	ErrParticipantNotFound = errors.New(ErrMsgParticipantNotFound)
	ErrCategoryInUse       = errors.New(ErrMsgCategoryInUse)
	ErrNameRequired        = errors.New(ErrMsgNameRequired)
	ErrInvalidExtraInfo    = errors.New(ErrMsgInvalidExtraInfo)

	// Transaction errors
	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
