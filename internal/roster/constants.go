package roster

import "time"

// Category cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// ==================== Error Context ====================

const (
	ErrContextListCategories   = "failed to list categories"
	ErrContextGetCategory      = "failed to get category"
	ErrContextCreateCategory   = "failed to create category"
	ErrContextUpdateCategory   = "failed to update category"
	ErrContextDeleteCategory   = "failed to delete category"
	ErrContextCountActive      = "failed to count active participants"
	ErrContextListParticipants = "failed to list participants"
	ErrContextGetParticipant   = "failed to get participant"
	ErrContextSaveParticipant  = "failed to save participant"
	ErrContextBeginImport      = "failed to begin import transaction"
	ErrContextInsertImport     = "failed to insert imported participants"
	ErrContextCommitImport     = "failed to commit import"
	ErrContextListDrawRecords  = "failed to list draw records"
	ErrContextFormatExport     = "failed to format export"
)

// Formatted error details
const (
	ErrFmtUnknownCategory = "unknown category %s"
	ErrFmtRowErrors       = "%w: %s"
	ErrFmtNegativeLimit   = "limit must not be negative: %d"
)

// rowErrorSep joins per-row errors into a single message
const rowErrorSep = "; "

// ==================== Log Messages ====================

const (
	LogMsgCategoryCreated    = "Category created"
	LogMsgCategoryDeleted    = "Category deleted"
	LogMsgParticipantCreated = "Participant created"
	LogMsgParticipantDeleted = "Participant deleted"
	LogMsgImportCalled       = "ImportParticipants called"
	LogMsgImportCompleted    = "Import completed"
	LogMsgExportCalled       = "Export called"
	LogMsgCategoryCacheHit   = "Category cache hit"
)
