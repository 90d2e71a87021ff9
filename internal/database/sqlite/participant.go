package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

func scanParticipant(row rowScanner) (domain.Participant, error) {
	var (
		p                    domain.Participant
		categoryID, extra    sql.NullString
		createdAt, updatedAt int64
	)
	if err := row.Scan(&p.ID, &p.Name, &categoryID, &extra, &p.IsActive, &createdAt, &updatedAt); err != nil {
		return p, err
	}
	info, err := decodeExtraInfo(extra)
	if err != nil {
		return p, err
	}
	p.CategoryID = stringPtr(categoryID)
	p.ExtraInfo = info
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}

func queryParticipants(ctx context.Context, q queryer, errMsg, query string, args ...any) ([]domain.Participant, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errMsg, err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return participants, nil
}

// ListParticipants returns participants matching filter in storage order.
// Search uses LIKE, which SQLite matches case-insensitively for ASCII.
func (s *Store) ListParticipants(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	var (
		where []string
		args  []any
	)
	switch {
	case filter.CategoryID != nil:
		where = append(where, "category_id = ?")
		args = append(args, *filter.CategoryID)
	case filter.Uncategorized:
		where = append(where, "category_id IS NULL")
	}
	if filter.ActiveOnly {
		where = append(where, "is_active = 1")
	}
	if filter.Search != "" {
		where = append(where, "name LIKE '%' || ? || '%'")
		args = append(args, filter.Search)
	}

	query := "SELECT " + participantColumns + " FROM participants"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at, id"

	return queryParticipants(ctx, s.db, ErrMsgFailedToListParticipants, query, args...)
}

// GetParticipant returns nil when the participant does not exist
func (s *Store) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+participantColumns+" FROM participants WHERE id = ?", id)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipant, err)
	}
	return &p, nil
}

const insertParticipantSQL = `INSERT INTO participants (id, name, category_id, extra_info, is_active, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

func insertParticipant(ctx context.Context, q queryer, p *domain.Participant) error {
	extra, err := encodeExtraInfo(p.ExtraInfo)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, insertParticipantSQL,
		p.ID, p.Name, nullableString(p.CategoryID), extra, p.IsActive, toMillis(p.CreatedAt), toMillis(p.UpdatedAt))
	return err
}

func (s *Store) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	if err := insertParticipant(ctx, s.db, p); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertParticipant, err)
	}
	return nil
}

func (s *Store) UpdateParticipant(ctx context.Context, p *domain.Participant) error {
	extra, err := encodeExtraInfo(p.ExtraInfo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateParticipant, err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE participants
		 SET name = ?, category_id = ?, extra_info = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, nullableString(p.CategoryID), extra, p.IsActive, toMillis(p.UpdatedAt), p.ID)
	return checkAffected(res, err, ErrMsgFailedToUpdateParticipant, domain.ErrParticipantNotFound, p.ID)
}

func (s *Store) SetParticipantActive(ctx context.Context, id string, active bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE participants SET is_active = ?, updated_at = ? WHERE id = ?",
		active, toMillis(time.Now()), id)
	return checkAffected(res, err, ErrMsgFailedToUpdateParticipant, domain.ErrParticipantNotFound, id)
}

func (s *Store) DeleteParticipant(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", id)
	return checkAffected(res, err, ErrMsgFailedToDeleteParticipant, domain.ErrParticipantNotFound, id)
}

func (s *Store) BeginImportTx(ctx context.Context) (repository.ImportTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &importTx{txWrapper{tx: tx}}, nil
}

type importTx struct {
	txWrapper
}

func (t *importTx) InsertParticipants(ctx context.Context, participants []domain.Participant) error {
	for i := range participants {
		if err := insertParticipant(ctx, t.tx, &participants[i]); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertParticipant, err)
		}
	}
	return nil
}
