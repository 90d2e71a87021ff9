package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

func scanParticipant(row pgx.CollectableRow) (domain.Participant, error) {
	var (
		p     domain.Participant
		extra []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &extra, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	info, err := decodeExtraInfo(extra)
	if err != nil {
		return p, err
	}
	p.ExtraInfo = info
	return p, nil
}

// listParticipants runs a participant query and collects the rows
func listParticipants(ctx context.Context, q querier, errMsg, query string, args ...any) ([]domain.Participant, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	participants, err := pgx.CollectRows(rows, scanParticipant)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return participants, nil
}

// ListParticipants returns participants matching filter in storage order
func (s *Store) ListParticipants(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	switch {
	case filter.CategoryID != nil:
		where = append(where, "category_id = "+arg(*filter.CategoryID))
	case filter.Uncategorized:
		where = append(where, "category_id IS NULL")
	}
	if filter.ActiveOnly {
		where = append(where, "is_active")
	}
	if filter.Search != "" {
		where = append(where, "name ILIKE '%' || "+arg(filter.Search)+" || '%'")
	}

	query := "SELECT " + participantColumns + " FROM participants"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at, id"

	return listParticipants(ctx, s.db, ErrMsgFailedToListParticipants, query, args...)
}

// GetParticipant returns nil when the participant does not exist
func (s *Store) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	rows, err := s.db.Query(ctx, "SELECT "+participantColumns+" FROM participants WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipant, err)
	}
	participant, err := pgx.CollectExactlyOneRow(rows, scanParticipant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipant, err)
	}
	return &participant, nil
}

func (s *Store) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	extra, err := extraInfoArg(p.ExtraInfo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertParticipant, err)
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO participants (id, name, category_id, extra_info, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.CategoryID, extra, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertParticipant, err)
	}
	return nil
}

func (s *Store) UpdateParticipant(ctx context.Context, p *domain.Participant) error {
	extra, err := extraInfoArg(p.ExtraInfo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateParticipant, err)
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE participants
		 SET name = $2, category_id = $3, extra_info = $4, is_active = $5, updated_at = $6
		 WHERE id = $1`,
		p.ID, p.Name, p.CategoryID, extra, p.IsActive, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateParticipant, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, p.ID)
	}
	return nil
}

func (s *Store) SetParticipantActive(ctx context.Context, id string, active bool) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE participants SET is_active = $2, updated_at = NOW() WHERE id = $1", id, active)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateParticipant, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
	}
	return nil
}

// DeleteParticipant removes the participant. Draw records keep the name
// snapshot with a NULL participant id.
func (s *Store) DeleteParticipant(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM participants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteParticipant, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
	}
	return nil
}

// BeginImportTx starts the transaction an import batch is copied in
func (s *Store) BeginImportTx(ctx context.Context) (repository.ImportTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &importTx{txWrapper{tx: tx}}, nil
}

type importTx struct {
	txWrapper
}

// InsertParticipants copies the batch with the COPY protocol
func (t *importTx) InsertParticipants(ctx context.Context, participants []domain.Participant) error {
	columns := []string{"id", "name", "category_id", "extra_info", "is_active", "created_at", "updated_at"}
	_, err := t.tx.CopyFrom(ctx, pgx.Identifier{"participants"}, columns,
		pgx.CopyFromSlice(len(participants), func(i int) ([]any, error) {
			p := participants[i]
			extra, err := extraInfoArg(p.ExtraInfo)
			if err != nil {
				return nil, err
			}
			return []any{p.ID, p.Name, p.CategoryID, extra, p.IsActive, p.CreatedAt, p.UpdatedAt}, nil
		}))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCopyParticipants, err)
	}
	return nil
}
