package repository

import (
	"context"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Draws defines the interface for draw persistence
type Draws interface {
	// BeginDrawTx starts the transaction one draw runs in
	BeginDrawTx(ctx context.Context) (DrawTx, error)
}

// DrawTx extends Tx with the reads and writes of a single draw
type DrawTx interface {
	Tx // Commit, Rollback

	// LockCategory serializes draws on a category until the transaction ends
	LockCategory(ctx context.Context, categoryID string) error
	// GetActiveParticipants returns the candidate pool in a stable order
	GetActiveParticipants(ctx context.Context, categoryID string) ([]domain.Participant, error)
	// InsertDrawRecords writes every record of one draw
	InsertDrawRecords(ctx context.Context, records []domain.DrawRecord) error
}

// DrawHistory lists persisted draw records, most recent first
type DrawHistory interface {
	ListDrawRecords(ctx context.Context, filter domain.DrawRecordFilter) ([]domain.DrawRecord, error)
}

// Store is the full persistence surface implemented by each database backend
type Store interface {
	Categories
	Participants
	Draws
	DrawHistory
	Ping(ctx context.Context) error
	Close()
}
