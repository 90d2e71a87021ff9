package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// BeginDrawTx starts an immediate transaction, so the write lock is already
// held when the candidates are read.
func (s *Store) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &drawTx{txWrapper{tx: tx}}, nil
}

type drawTx struct {
	txWrapper
}

// LockCategory is a no-op: the immediate transaction already excludes every
// other writer.
func (t *drawTx) LockCategory(context.Context, string) error {
	return nil
}

func (t *drawTx) GetActiveParticipants(ctx context.Context, categoryID string) ([]domain.Participant, error) {
	return queryParticipants(ctx, t.tx, ErrMsgFailedToGetActive,
		"SELECT "+participantColumns+" FROM participants WHERE category_id = ? AND is_active = 1 ORDER BY created_at, id",
		categoryID)
}

func (t *drawTx) InsertDrawRecords(ctx context.Context, records []domain.DrawRecord) error {
	stmt, err := t.tx.PrepareContext(ctx,
		"INSERT INTO lottery_records ("+drawRecordColumns+") VALUES ("+placeholders(9)+")")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertDrawRecords, err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.ID, r.DrawID, r.Position, nullableString(r.CategoryID), nullableString(r.ParticipantID),
			r.ParticipantName, r.PrizeName, toMillis(r.LotteryDate), toMillis(r.CreatedAt))
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%s: %w", ErrMsgDuplicateWinner, err)
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertDrawRecords, err)
		}
	}
	return nil
}

func scanDrawRecord(row rowScanner) (domain.DrawRecord, error) {
	var (
		r                       domain.DrawRecord
		categoryID, participant sql.NullString
		lotteryDate, createdAt  int64
	)
	err := row.Scan(&r.ID, &r.DrawID, &r.Position, &categoryID, &participant,
		&r.ParticipantName, &r.PrizeName, &lotteryDate, &createdAt)
	if err != nil {
		return r, err
	}
	r.CategoryID = stringPtr(categoryID)
	r.ParticipantID = stringPtr(participant)
	r.LotteryDate = fromMillis(lotteryDate)
	r.CreatedAt = fromMillis(createdAt)
	return r, nil
}

// ListDrawRecords returns draw records most recent first, each draw's
// records in winner order.
func (s *Store) ListDrawRecords(ctx context.Context, filter domain.DrawRecordFilter) ([]domain.DrawRecord, error) {
	var (
		where []string
		args  []any
	)
	if filter.CategoryID != nil {
		where = append(where, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.Search != "" {
		where = append(where, "(participant_name LIKE '%' || ? || '%' OR prize_name LIKE '%' || ? || '%')")
		args = append(args, filter.Search, filter.Search)
	}
	if filter.From != nil {
		where = append(where, "lottery_date >= ?")
		args = append(args, toMillis(*filter.From))
	}
	if filter.To != nil {
		where = append(where, "lottery_date < ?")
		args = append(args, toMillis(*filter.To))
	}

	query := "SELECT " + drawRecordColumns + " FROM lottery_records"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY lottery_date DESC, draw_id, position"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDrawRecords, err)
	}
	defer rows.Close()

	var records []domain.DrawRecord
	for rows.Next() {
		r, err := scanDrawRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDrawRecords, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDrawRecords, err)
	}
	return records, nil
}
