package sqlite

// DSN pragmas applied to every pooled connection. Immediate transactions
// take the database write lock at BEGIN, which serializes draws.
const dsnParams = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_txlock=immediate"

// Error Messages
const (
	ErrMsgPathRequired              = "sqlite path is required"
	ErrMsgFailedToOpen              = "failed to open sqlite database"
	ErrMsgFailedToPing              = "failed to ping sqlite database"
	ErrMsgFailedToMigrate           = "failed to migrate sqlite database"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToListCategories    = "failed to list categories"
	ErrMsgFailedToGetCategory       = "failed to get category"
	ErrMsgFailedToInsertCategory    = "failed to insert category"
	ErrMsgFailedToUpdateCategory    = "failed to update category"
	ErrMsgFailedToDeleteCategory    = "failed to delete category"
	ErrMsgFailedToCountByCategory   = "failed to count active participants"
	ErrMsgFailedToListParticipants  = "failed to list participants"
	ErrMsgFailedToGetParticipant    = "failed to get participant"
	ErrMsgFailedToInsertParticipant = "failed to insert participant"
	ErrMsgFailedToUpdateParticipant = "failed to update participant"
	ErrMsgFailedToDeleteParticipant = "failed to delete participant"
	ErrMsgFailedToGetActive         = "failed to get active participants"
	ErrMsgFailedToEncodeExtraInfo   = "failed to encode extra info"
	ErrMsgFailedToDecodeExtraInfo   = "failed to decode extra info"
	ErrMsgFailedToInsertDrawRecords = "failed to insert draw records"
	ErrMsgFailedToListDrawRecords   = "failed to list draw records"
	ErrMsgDuplicateWinner           = "participant drawn twice in one draw"
	ErrMsgFailedToCloseDatabase     = "Failed to close sqlite database"
)

const (
	categoryColumns    = "id, name, description, is_active, created_at, updated_at"
	participantColumns = "id, name, category_id, extra_info, is_active, created_at, updated_at"
	drawRecordColumns  = "id, draw_id, position, category_id, participant_id, participant_name, prize_name, lottery_date, created_at"
)
