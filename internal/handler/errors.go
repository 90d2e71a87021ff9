package handler

// Error codes returned in the error envelope. Clients branch on these.
const (
	// Draw
	CodeCategoryRequired       = "CATEGORY_REQUIRED"
	CodePrizesRequired         = "PRIZES_REQUIRED"
	CodeInvalidCount           = "INVALID_COUNT"
	CodeNoCandidates           = "NO_CANDIDATES"
	CodeInsufficientCandidates = "INSUFFICIENT_CANDIDATES"
	CodePersistFailed          = "PERSIST_FAILED"

	// Import
	CodeCSVRequired  = "CSV_REQUIRED"
	CodeCSVNoData    = "CSV_NO_DATA"
	CodeNoValidRows  = "NO_VALID_ROWS"
	CodeImportFailed = "IMPORT_FAILED"

	// Export
	CodeInvalidExportType = "INVALID_EXPORT_TYPE"
	CodeExportFailed      = "EXPORT_FAILED"

	// Management
	CodeNotFound         = "NOT_FOUND"
	CodeCategoryInUse    = "CATEGORY_IN_USE"
	CodeInvalidExtraInfo = "INVALID_EXTRA_INFO"
	CodeInvalidRequest   = "INVALID_REQUEST"

	// Transport
	CodeRequestTooLarge    = "REQUEST_TOO_LARGE"
	CodeRequestCanceled    = "REQUEST_CANCELED"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeRateLimited        = "RATE_LIMITED"
)

// StatusClientClosedRequest is the non-standard status for a caller that went away
const StatusClientClosedRequest = 499

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgRequestCanceled       = "Request canceled before the operation completed"
	ErrMsgStorageUnavailable    = "Storage is temporarily unavailable. Please try again."
	ErrMsgPersistFailed         = "The draw could not be saved. Nothing was recorded; please try again."
	ErrMsgImportFailed          = "The import could not be saved. Nothing was imported; please try again."
	ErrMsgExportFailed          = "The export could not be generated. Please try again."
	ErrMsgUnauthorized          = "Unauthorized"
	ErrMsgTooManyRequests       = "Too many requests"

	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
)

// Success messages for API responses
const (
	MsgCategoryDeleted      = "Category deleted"
	MsgParticipantDeleted   = "Participant deleted"
	MsgCategoryActiveSet    = "Category status updated"
	MsgParticipantActiveSet = "Participant status updated"
)

// Operation names used in logs
const (
	OpDraw              = "Draw"
	OpImport            = "Import participants"
	OpExport            = "Export"
	OpCreateCategory    = "Create category"
	OpUpdateCategory    = "Update category"
	OpSetCategoryActive = "Set category active"
	OpCreateParticipant = "Create participant"
	OpUpdateParticipant = "Update participant"
	OpSetActive         = "Set participant active"
)
