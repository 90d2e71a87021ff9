package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

func scanCategory(row pgx.CollectableRow) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListCategories returns every category in creation order
func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx, "SELECT "+categoryColumns+" FROM categories ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	return categories, nil
}

// GetCategory returns nil when the category does not exist
func (s *Store) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	rows, err := s.db.Query(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	category, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	return &category, nil
}

func (s *Store) GetCategoriesByIDs(ctx context.Context, ids []string) ([]domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = ANY($1) ORDER BY created_at, id", ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *domain.Category) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO categories (id, name, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.Name, category.Description, category.IsActive, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCategory, err)
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, category *domain.Category) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1",
		category.ID, category.Name, category.Description, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCategory, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, category.ID)
	}
	return nil
}

func (s *Store) SetCategoryActive(ctx context.Context, id string, active bool) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE categories SET is_active = $2, updated_at = NOW() WHERE id = $1", id, active)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCategory, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}
	return nil
}

// DeleteCategory removes the category. Its participants and draw records
// are kept with a NULL category.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCategory, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}
	return nil
}

func (s *Store) CountActiveParticipants(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.Query(ctx,
		`SELECT COALESCE(category_id, ''), COUNT(*)
		 FROM participants WHERE is_active GROUP BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountByCategory, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			id string
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountByCategory, err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountByCategory, err)
	}
	return counts, nil
}
