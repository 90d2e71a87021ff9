package repository

import (
	"context"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Participants defines the interface for participant persistence.
// Lookups return (nil, nil) when the row does not exist.
type Participants interface {
	ListParticipants(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error)
	GetParticipant(ctx context.Context, id string) (*domain.Participant, error)
	CreateParticipant(ctx context.Context, participant *domain.Participant) error
	// UpdateParticipant returns domain.ErrParticipantNotFound when no row matched
	UpdateParticipant(ctx context.Context, participant *domain.Participant) error
	SetParticipantActive(ctx context.Context, id string, active bool) error
	DeleteParticipant(ctx context.Context, id string) error

	// BeginImportTx starts a transaction for bulk participant inserts
	BeginImportTx(ctx context.Context) (ImportTx, error)
}

// ImportTx inserts an import batch atomically
type ImportTx interface {
	Tx

	InsertParticipants(ctx context.Context, participants []domain.Participant) error
}
