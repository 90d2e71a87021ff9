package lottery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/concurrency"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

var fixedNow = time.Date(2025, 5, 4, 12, 30, 15, 123456789, time.UTC)

func newTestService(repo repository.Draws) *service {
	svc := NewService(repo, concurrency.NewLockManager(), Config{}).(*service)
	svc.rnd = seeded(42)
	svc.now = func() time.Time { return fixedNow }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return svc
}

func candidatePool(n int) []domain.Participant {
	out := make([]domain.Participant, n)
	for i := range out {
		out[i] = domain.Participant{
			ID:         fmt.Sprintf("p%d", i),
			Name:       fmt.Sprintf("Person %d", i),
			CategoryID: domain.StringPtr("cat"),
			IsActive:   true,
		}
	}
	return out
}

func TestDraw_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.DrawRequest
		wantErr error
	}{
		{"everything missing reports category first", domain.DrawRequest{}, domain.ErrCategoryRequired},
		{"blank category", domain.DrawRequest{CategoryID: "  ", PrizeNames: []string{"A"}, WinnerCount: 1}, domain.ErrCategoryRequired},
		{"prizes checked before count", domain.DrawRequest{CategoryID: "cat", WinnerCount: 0}, domain.ErrPrizesRequired},
		{"blank prize label", domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A", " "}, WinnerCount: 1}, domain.ErrPrizesRequired},
		{"whitespace-only prize label", domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"\t\n "}, WinnerCount: 1}, domain.ErrPrizesRequired},
		{"zero winners", domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 0}, domain.ErrInvalidCount},
		{"negative winners", domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: -2}, domain.ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)

			result, err := svc.Draw(context.Background(), tt.req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "BeginDrawTx", mock.Anything)
		})
	}
}

func TestDraw_NoCandidates(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
	tx.On("LockCategory", mock.Anything, "cat").Return(nil)
	tx.On("GetActiveParticipants", mock.Anything, "cat").Return([]domain.Participant{}, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := newTestService(repo)
	result, err := svc.Draw(context.Background(), domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 1})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNoCandidates)
	tx.AssertNotCalled(t, "InsertDrawRecords", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertCalled(t, "Rollback", mock.Anything)
}

func TestDraw_InsufficientCandidates(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
	tx.On("LockCategory", mock.Anything, "cat").Return(nil)
	tx.On("GetActiveParticipants", mock.Anything, "cat").Return(candidatePool(2), nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := newTestService(repo)
	result, err := svc.Draw(context.Background(), domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 3})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInsufficientCandidates)
	assert.Contains(t, err.Error(), "requested 3, available 2")
	tx.AssertNotCalled(t, "InsertDrawRecords", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDraw_Success(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	pool := candidatePool(5)

	var inserted []domain.DrawRecord
	repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
	tx.On("LockCategory", mock.Anything, "cat").Return(nil)
	tx.On("GetActiveParticipants", mock.Anything, "cat").Return(pool, nil)
	tx.On("InsertDrawRecords", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(1).([]domain.DrawRecord) }).
		Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed)).Maybe()

	svc := newTestService(repo)
	result, err := svc.Draw(context.Background(), domain.DrawRequest{
		CategoryID:  " cat ",
		PrizeNames:  []string{"Car", "Mug"},
		WinnerCount: 3,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "cat", result.CategoryID)
	assert.Equal(t, 5, result.TotalParticipants)
	require.Len(t, result.Winners, 3)
	require.Len(t, result.Records, 3)
	assert.Equal(t, inserted, result.Records)

	wantDate := fixedNow.Truncate(time.Millisecond)
	wantPrizes := []string{"Car", "Mug", "Car"}
	seen := map[string]bool{}
	for i, rec := range result.Records {
		w := result.Winners[i]

		assert.False(t, seen[w.ID], "winner %s drawn twice", w.ID)
		seen[w.ID] = true

		assert.Equal(t, wantPrizes[i], rec.PrizeName)
		assert.Equal(t, wantPrizes[i], w.PrizeName)
		assert.Equal(t, i, rec.Position)
		assert.Equal(t, wantDate, rec.LotteryDate, "every record shares the draw instant")
		assert.Equal(t, wantDate, w.LotteryDate)
		assert.Equal(t, result.Records[0].DrawID, rec.DrawID)
		assert.Equal(t, "cat", domain.StringValue(rec.CategoryID))
		assert.Equal(t, w.ID, domain.StringValue(rec.ParticipantID))
		assert.Equal(t, w.Name, rec.ParticipantName)
		assert.Contains(t, pool, domain.Participant{ID: w.ID, Name: w.Name, CategoryID: domain.StringPtr("cat"), IsActive: true})
	}

	tx.AssertExpectations(t)
}

func TestDraw_PrizeLabelsKeptAsSent(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)

	var inserted []domain.DrawRecord
	repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
	tx.On("LockCategory", mock.Anything, "cat").Return(nil)
	tx.On("GetActiveParticipants", mock.Anything, "cat").Return(candidatePool(4), nil)
	tx.On("InsertDrawRecords", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(1).([]domain.DrawRecord) }).
		Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed)).Maybe()

	prizes := []string{" Grand Prize ", "\tMug", "Car"}
	result, err := newTestService(repo).Draw(context.Background(), domain.DrawRequest{
		CategoryID:  "cat",
		PrizeNames:  prizes,
		WinnerCount: 4,
	})
	require.NoError(t, err)

	want := []string{" Grand Prize ", "\tMug", "Car", " Grand Prize "}
	require.Len(t, inserted, len(want))
	for i, rec := range inserted {
		assert.Equal(t, want[i], rec.PrizeName)
		assert.Contains(t, prizes, rec.PrizeName)
		assert.Equal(t, want[i], result.Winners[i].PrizeName)
	}
	assert.Equal(t, []string{" Grand Prize ", "\tMug", "Car"}, prizes, "request labels are not modified")
}

func TestDraw_PersistFailureLeavesNothingCommitted(t *testing.T) {
	tests := []struct {
		name      string
		insertErr error
		commitErr error
	}{
		{"batch insert rejected", errors.New("duplicate key"), nil},
		{"insert timed out", context.DeadlineExceeded, nil},
		{"commit failed", nil, errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tx := new(MockTx)
			repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
			tx.On("LockCategory", mock.Anything, "cat").Return(nil)
			tx.On("GetActiveParticipants", mock.Anything, "cat").Return(candidatePool(4), nil)
			tx.On("InsertDrawRecords", mock.Anything, mock.Anything).Return(tt.insertErr)
			if tt.insertErr == nil {
				tx.On("Commit", mock.Anything).Return(tt.commitErr)
			}
			tx.On("Rollback", mock.Anything).Return(nil)

			svc := newTestService(repo)
			result, err := svc.Draw(context.Background(), domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 2})

			assert.Nil(t, result, "no partial result may be returned")
			assert.ErrorIs(t, err, domain.ErrPersistFailed)
			if tt.insertErr != nil {
				assert.ErrorIs(t, err, tt.insertErr)
				tx.AssertNotCalled(t, "Commit", mock.Anything)
			} else {
				assert.ErrorIs(t, err, tt.commitErr)
			}
			tx.AssertCalled(t, "Rollback", mock.Anything)
		})
	}
}

func TestDraw_StorageUnavailable(t *testing.T) {
	t.Run("begin fails", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("BeginDrawTx", mock.Anything).Return(nil, errors.New("pool exhausted"))

		_, err := newTestService(repo).Draw(context.Background(), domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 1})
		assert.ErrorIs(t, err, domain.ErrPersistFailed)
		assert.Contains(t, err.Error(), "pool exhausted")
	})

	t.Run("candidate fetch fails", func(t *testing.T) {
		repo := new(MockRepository)
		tx := new(MockTx)
		repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
		tx.On("LockCategory", mock.Anything, "cat").Return(nil)
		tx.On("GetActiveParticipants", mock.Anything, "cat").Return(nil, errors.New("read timeout"))
		tx.On("Rollback", mock.Anything).Return(nil)

		_, err := newTestService(repo).Draw(context.Background(), domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 1})
		assert.ErrorIs(t, err, domain.ErrPersistFailed)
		assert.Contains(t, err.Error(), ErrContextFetchCandidates)
	})

	t.Run("category lock fails", func(t *testing.T) {
		repo := new(MockRepository)
		tx := new(MockTx)
		repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
		tx.On("LockCategory", mock.Anything, "cat").Return(errors.New("lock timeout"))
		tx.On("Rollback", mock.Anything).Return(nil)

		_, err := newTestService(repo).Draw(context.Background(), domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 1})
		assert.ErrorIs(t, err, domain.ErrPersistFailed)
		tx.AssertNotCalled(t, "GetActiveParticipants", mock.Anything, mock.Anything)
	})
}

func TestDraw_CallerCancelsBeforePersist(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := new(MockRepository)
	tx := new(MockTx)
	repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
	tx.On("LockCategory", mock.Anything, "cat").Return(nil)
	tx.On("GetActiveParticipants", mock.Anything, "cat").
		Run(func(mock.Arguments) { cancel() }).
		Return(candidatePool(3), nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	result, err := newTestService(repo).Draw(ctx, domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 1})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrPersistFailed)
	tx.AssertNotCalled(t, "InsertDrawRecords", mock.Anything, mock.Anything)
}

func TestDraw_PersistIgnoresCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := new(MockRepository)
	tx := new(MockTx)
	repo.On("BeginDrawTx", mock.Anything).Return(tx, nil)
	tx.On("LockCategory", mock.Anything, "cat").Return(nil)
	tx.On("GetActiveParticipants", mock.Anything, "cat").Return(candidatePool(3), nil)

	var (
		persistErrSeen error
		hasDeadline    bool
	)
	tx.On("InsertDrawRecords", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			// the caller goes away once the write has been issued
			cancel()
			persistCtx := args.Get(0).(context.Context)
			persistErrSeen = persistCtx.Err()
			_, hasDeadline = persistCtx.Deadline()
		}).
		Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	result, err := newTestService(repo).Draw(ctx, domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 1})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NoError(t, persistErrSeen)
	assert.True(t, hasDeadline, "persistence must be bounded by a timeout")
	tx.AssertCalled(t, "Commit", mock.Anything)
}

// serialTx is an in-memory DrawTx that tracks how many draws on one category
// overlap.
type serialTx struct {
	repo *serialRepo
}

func (t *serialTx) LockCategory(context.Context, string) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.inFlight++
	if t.repo.inFlight > t.repo.maxInFlight {
		t.repo.maxInFlight = t.repo.inFlight
	}
	return nil
}

func (t *serialTx) GetActiveParticipants(context.Context, string) ([]domain.Participant, error) {
	time.Sleep(time.Millisecond)
	return candidatePool(10), nil
}

func (t *serialTx) InsertDrawRecords(_ context.Context, records []domain.DrawRecord) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.records = append(t.repo.records, records...)
	return nil
}

func (t *serialTx) Commit(context.Context) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.inFlight--
	return nil
}

func (t *serialTx) Rollback(context.Context) error {
	return errors.New(domain.ErrMsgTxClosed)
}

type serialRepo struct {
	mu          sync.Mutex
	inFlight    int
	maxInFlight int
	records     []domain.DrawRecord
}

func (r *serialRepo) BeginDrawTx(context.Context) (repository.DrawTx, error) {
	return &serialTx{repo: r}, nil
}

func TestDraw_ConcurrentDrawsOnSameCategoryAreSerialized(t *testing.T) {
	repo := &serialRepo{}
	svc := NewService(repo, concurrency.NewLockManager(), Config{})

	const draws = 20
	var wg sync.WaitGroup
	errs := make(chan error, draws)
	for i := 0; i < draws; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Draw(context.Background(), domain.DrawRequest{CategoryID: "cat", PrizeNames: []string{"A"}, WinnerCount: 2})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.maxInFlight)
	assert.Len(t, repo.records, draws*2)

	byDraw := map[string]map[string]bool{}
	for _, rec := range repo.records {
		if byDraw[rec.DrawID] == nil {
			byDraw[rec.DrawID] = map[string]bool{}
		}
		pid := domain.StringValue(rec.ParticipantID)
		assert.False(t, byDraw[rec.DrawID][pid], "participant %s won twice in draw %s", pid, rec.DrawID)
		byDraw[rec.DrawID][pid] = true
	}
	assert.Len(t, byDraw, draws)
}
