package lottery

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// MockRepository implements repository.Draws for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DrawTx), args.Error(1)
}

// MockTx implements repository.DrawTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) LockCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockTx) GetActiveParticipants(ctx context.Context, categoryID string) ([]domain.Participant, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *MockTx) InsertDrawRecords(ctx context.Context, records []domain.DrawRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
