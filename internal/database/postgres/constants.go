package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced category or participant is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToLockCategory     = "failed to acquire category draw lock"
)

// Error Messages - Category Operations
const (
	ErrMsgFailedToListCategories  = "failed to list categories"
	ErrMsgFailedToGetCategory     = "failed to get category"
	ErrMsgFailedToInsertCategory  = "failed to insert category"
	ErrMsgFailedToUpdateCategory  = "failed to update category"
	ErrMsgFailedToDeleteCategory  = "failed to delete category"
	ErrMsgFailedToCountByCategory = "failed to count active participants"
)

// Error Messages - Participant Operations
const (
	ErrMsgFailedToListParticipants    = "failed to list participants"
	ErrMsgFailedToGetParticipant      = "failed to get participant"
	ErrMsgFailedToInsertParticipant   = "failed to insert participant"
	ErrMsgFailedToUpdateParticipant   = "failed to update participant"
	ErrMsgFailedToDeleteParticipant   = "failed to delete participant"
	ErrMsgFailedToCopyParticipants    = "failed to copy participants"
	ErrMsgFailedToGetActiveByCategory = "failed to get active participants"
	ErrMsgFailedToDecodeExtraInfo     = "failed to decode extra info"
)

// Error Messages - Draw Record Operations
const (
	ErrMsgFailedToInsertDrawRecords = "failed to insert draw records"
	ErrMsgFailedToListDrawRecords   = "failed to list draw records"
	ErrMsgDuplicateWinner           = "participant drawn twice in one draw"
)

// Queries
const (
	categoryColumns    = "id, name, description, is_active, created_at, updated_at"
	participantColumns = "id, name, category_id, extra_info, is_active, created_at, updated_at"
	drawRecordColumns  = "id, draw_id, position, category_id, participant_id, participant_name, prize_name, lottery_date, created_at"

	// hashtext maps the category id onto the bigint advisory lock space
	lockCategoryQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"
)
