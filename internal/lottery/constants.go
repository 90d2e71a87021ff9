package lottery

import "time"

// Default bounds for the storage calls of one draw
const (
	DefaultFetchTimeout   = 5 * time.Second
	DefaultPersistTimeout = 10 * time.Second
)

// lockKeyPrefix namespaces draw locks in the shared LockManager
const lockKeyPrefix = "draw:"

// ==================== Error Context ====================

const (
	ErrContextBeginTx         = "failed to begin draw transaction"
	ErrContextLockCategory    = "failed to lock category"
	ErrContextFetchCandidates = "failed to fetch candidates"
	ErrContextInsertRecords   = "failed to insert draw records"
	ErrContextCommit          = "failed to commit draw"
	ErrContextAbandoned       = "draw abandoned before persistence"
)

// Formatted validation details
const (
	ErrFmtBlankPrize         = "prize name at index %d is blank"
	ErrFmtWinnerCount        = "got %d"
	ErrFmtInsufficientDetail = "requested %d, available %d"
)

// ==================== Log Messages ====================

const (
	LogMsgDrawCalled        = "Draw called"
	LogMsgDrawRejected      = "Draw rejected"
	LogMsgDrawCompleted     = "Draw completed"
	LogMsgDrawPersistFailed = "Draw persistence failed"
)
