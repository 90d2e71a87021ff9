// Package lottery draws winners from the active participants of a category
// and persists the outcome as one atomic batch of draw records.
package lottery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LuckyDraw_Go/internal/concurrency"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/metrics"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// Service defines the interface for draw operations
type Service interface {
	Draw(ctx context.Context, req domain.DrawRequest) (*domain.DrawResult, error)
}

// Config bounds the storage calls of a draw. Zero values fall back to the
// package defaults.
type Config struct {
	FetchTimeout   time.Duration
	PersistTimeout time.Duration
}

type service struct {
	repo  repository.Draws
	locks *concurrency.LockManager
	cfg   Config
	rnd   RandSource
	now   func() time.Time
	newID func() string
}

// NewService creates a new draw service. Draws on the same category are
// serialized through locks, and again inside storage by DrawTx.LockCategory.
func NewService(repo repository.Draws, locks *concurrency.LockManager, cfg Config) Service {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = DefaultPersistTimeout
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:  repo,
		locks: locks,
		cfg:   cfg,
		rnd:   DefaultSource,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *service) Draw(ctx context.Context, req domain.DrawRequest) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDrawCalled, "category_id", req.CategoryID, "prizes", len(req.PrizeNames), "winner_count", req.WinnerCount)

	start := time.Now()
	result, pool, err := s.draw(ctx, req)
	outcome := drawOutcome(err)

	winners := 0
	if result != nil {
		winners = len(result.Winners)
	}
	metrics.RecordDraw(outcome, winners, pool, time.Since(start))

	if err != nil {
		if outcome == metrics.DrawResultPersistError {
			log.Error(LogMsgDrawPersistFailed, "category_id", req.CategoryID, "error", err)
		} else {
			log.Warn(LogMsgDrawRejected, "category_id", req.CategoryID, "reason", outcome, "error", err)
		}
		return nil, err
	}

	log.Info(LogMsgDrawCompleted, "category_id", result.CategoryID, "winners", winners, "pool", pool)
	return result, nil
}

// draw returns the candidate pool size alongside the result for metrics.
func (s *service) draw(ctx context.Context, req domain.DrawRequest) (*domain.DrawResult, int, error) {
	categoryID, prizes, err := validateRequest(req)
	if err != nil {
		return nil, 0, err
	}

	unlock, err := s.locks.Lock(ctx, lockKeyPrefix+categoryID)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrContextAbandoned, err)
	}
	defer unlock()

	// The transaction outlives caller cancellation so the persist step can
	// finish; its lifetime is still bounded.
	txCtx, txCancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.FetchTimeout+s.cfg.PersistTimeout)
	defer txCancel()

	tx, err := s.repo.BeginDrawTx(txCtx)
	if err != nil {
		return nil, 0, persistErr(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(txCtx, tx)

	candidates, err := s.fetchCandidates(ctx, tx, categoryID)
	if err != nil {
		return nil, 0, err
	}
	pool := len(candidates)

	if pool == 0 {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrNoCandidates, categoryID)
	}
	if pool < req.WinnerCount {
		return nil, pool, fmt.Errorf("%w: "+ErrFmtInsufficientDetail, domain.ErrInsufficientCandidates, req.WinnerCount, pool)
	}

	winners, err := Sample(s.rnd, candidates, req.WinnerCount)
	if err != nil {
		return nil, pool, err
	}
	assignments := AssignPrizes(winners, prizes)
	records := s.buildRecords(categoryID, assignments)

	// Past this point the draw runs to completion even if the caller leaves.
	if err := ctx.Err(); err != nil {
		return nil, pool, fmt.Errorf("%s: %w", ErrContextAbandoned, err)
	}

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PersistTimeout)
	defer cancel()

	if err := tx.InsertDrawRecords(persistCtx, records); err != nil {
		return nil, pool, persistErr(ErrContextInsertRecords, err)
	}
	if err := tx.Commit(persistCtx); err != nil {
		return nil, pool, persistErr(ErrContextCommit, err)
	}

	return buildResult(categoryID, pool, assignments, records), pool, nil
}

func (s *service) fetchCandidates(ctx context.Context, tx repository.DrawTx, categoryID string) ([]domain.Participant, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	if err := tx.LockCategory(fetchCtx, categoryID); err != nil {
		return nil, fetchErr(ctx, ErrContextLockCategory, err)
	}

	candidates, err := tx.GetActiveParticipants(fetchCtx, categoryID)
	if err != nil {
		return nil, fetchErr(ctx, ErrContextFetchCandidates, err)
	}
	return candidates, nil
}

// fetchErr separates a caller that went away from a storage failure.
func fetchErr(ctx context.Context, errContext string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", ErrContextAbandoned, ctxErr)
	}
	return persistErr(errContext, err)
}

// buildRecords snapshots every winner at a single instant. Timestamps are
// truncated to milliseconds so stored and returned values agree on every
// backend.
func (s *service) buildRecords(categoryID string, assignments []Assignment) []domain.DrawRecord {
	now := s.now().UTC().Truncate(time.Millisecond)
	drawID := s.newID()

	records := make([]domain.DrawRecord, len(assignments))
	for i, a := range assignments {
		participantID := a.Participant.ID
		category := categoryID
		records[i] = domain.DrawRecord{
			ID:              s.newID(),
			DrawID:          drawID,
			Position:        i,
			CategoryID:      &category,
			ParticipantID:   &participantID,
			ParticipantName: a.Participant.Name,
			PrizeName:       a.PrizeName,
			LotteryDate:     now,
			CreatedAt:       now,
		}
	}
	return records
}

func buildResult(categoryID string, pool int, assignments []Assignment, records []domain.DrawRecord) *domain.DrawResult {
	winners := make([]domain.Winner, len(assignments))
	for i, a := range assignments {
		winners[i] = domain.Winner{
			ID:          a.Participant.ID,
			Name:        a.Participant.Name,
			PrizeName:   a.PrizeName,
			LotteryDate: records[i].LotteryDate,
		}
	}
	return &domain.DrawResult{
		Winners:           winners,
		TotalParticipants: pool,
		CategoryID:        categoryID,
		Records:           records,
	}
}

// validateRequest checks the request in a fixed order so each failure
// surfaces as its own error kind. It returns the trimmed category id and a
// copy of the prize labels exactly as sent.
func validateRequest(req domain.DrawRequest) (string, []string, error) {
	categoryID := strings.TrimSpace(req.CategoryID)
	if categoryID == "" {
		return "", nil, domain.ErrCategoryRequired
	}

	if len(req.PrizeNames) == 0 {
		return "", nil, domain.ErrPrizesRequired
	}
	for i, p := range req.PrizeNames {
		if strings.TrimSpace(p) == "" {
			return "", nil, fmt.Errorf("%w: "+ErrFmtBlankPrize, domain.ErrPrizesRequired, i)
		}
	}
	prizes := append([]string(nil), req.PrizeNames...)

	if req.WinnerCount <= 0 {
		return "", nil, fmt.Errorf("%w: "+ErrFmtWinnerCount, domain.ErrInvalidCount, req.WinnerCount)
	}

	return categoryID, prizes, nil
}

func persistErr(errContext string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistFailed, errContext, err)
}

func drawOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.DrawResultSuccess
	case errors.Is(err, domain.ErrPersistFailed):
		return metrics.DrawResultPersistError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.DrawResultCanceled
	case errors.Is(err, domain.ErrNoCandidates), errors.Is(err, domain.ErrInsufficientCandidates):
		return metrics.DrawResultRejected
	default:
		return metrics.DrawResultInvalid
	}
}
