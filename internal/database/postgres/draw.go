package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// BeginDrawTx starts the transaction a single draw runs in
func (s *Store) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &drawTx{txWrapper{tx: tx}}, nil
}

type drawTx struct {
	txWrapper
}

// LockCategory takes a transaction-scoped advisory lock on the category.
// Concurrent draws on the same category block here until the holder ends.
func (t *drawTx) LockCategory(ctx context.Context, categoryID string) error {
	if _, err := t.tx.Exec(ctx, lockCategoryQuery, categoryID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockCategory, err)
	}
	return nil
}

func (t *drawTx) GetActiveParticipants(ctx context.Context, categoryID string) ([]domain.Participant, error) {
	return listParticipants(ctx, t.tx, ErrMsgFailedToGetActiveByCategory,
		"SELECT "+participantColumns+" FROM participants WHERE category_id = $1 AND is_active ORDER BY created_at, id",
		categoryID)
}

func (t *drawTx) InsertDrawRecords(ctx context.Context, records []domain.DrawRecord) error {
	columns := []string{"id", "draw_id", "position", "category_id", "participant_id", "participant_name", "prize_name", "lottery_date", "created_at"}
	_, err := t.tx.CopyFrom(ctx, pgx.Identifier{"lottery_records"}, columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{r.ID, r.DrawID, r.Position, r.CategoryID, r.ParticipantID, r.ParticipantName, r.PrizeName, r.LotteryDate, r.CreatedAt}, nil
		}))
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return fmt.Errorf("%s: %w", ErrMsgDuplicateWinner, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertDrawRecords, err)
	}
	return nil
}

func scanDrawRecord(row pgx.CollectableRow) (domain.DrawRecord, error) {
	var r domain.DrawRecord
	err := row.Scan(&r.ID, &r.DrawID, &r.Position, &r.CategoryID, &r.ParticipantID,
		&r.ParticipantName, &r.PrizeName, &r.LotteryDate, &r.CreatedAt)
	return r, err
}

// ListDrawRecords returns draw records most recent first. Records of one
// draw stay together in winner order.
func (s *Store) ListDrawRecords(ctx context.Context, filter domain.DrawRecordFilter) ([]domain.DrawRecord, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.CategoryID != nil {
		where = append(where, "category_id = "+arg(*filter.CategoryID))
	}
	if filter.Search != "" {
		p := arg(filter.Search)
		where = append(where, "(participant_name ILIKE '%' || "+p+" || '%' OR prize_name ILIKE '%' || "+p+" || '%')")
	}
	if filter.From != nil {
		where = append(where, "lottery_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		where = append(where, "lottery_date < "+arg(*filter.To))
	}

	query := "SELECT " + drawRecordColumns + " FROM lottery_records"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY lottery_date DESC, draw_id, position"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDrawRecords, err)
	}
	records, err := pgx.CollectRows(rows, scanDrawRecord)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDrawRecords, err)
	}
	return records, nil
}
