package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

func scanCategory(row rowScanner) (domain.Category, error) {
	var (
		c                    domain.Category
		description          sql.NullString
		createdAt, updatedAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &description, &c.IsActive, &createdAt, &updatedAt); err != nil {
		return c, err
	}
	c.Description = stringPtr(description)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return c, nil
}

func (s *Store) queryCategories(ctx context.Context, errMsg, query string, args ...any) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errMsg, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return categories, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.queryCategories(ctx, ErrMsgFailedToListCategories,
		"SELECT "+categoryColumns+" FROM categories ORDER BY created_at, id")
}

// GetCategory returns nil when the category does not exist
func (s *Store) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	return &c, nil
}

func (s *Store) GetCategoriesByIDs(ctx context.Context, ids []string) ([]domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return s.queryCategories(ctx, ErrMsgFailedToGetCategory,
		"SELECT "+categoryColumns+" FROM categories WHERE id IN ("+placeholders(len(ids))+") ORDER BY created_at, id",
		args...)
}

func (s *Store) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, nullableString(c.Description), c.IsActive, toMillis(c.CreatedAt), toMillis(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCategory, err)
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *domain.Category) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?",
		c.Name, nullableString(c.Description), toMillis(c.UpdatedAt), c.ID)
	return checkAffected(res, err, ErrMsgFailedToUpdateCategory, domain.ErrCategoryNotFound, c.ID)
}

func (s *Store) SetCategoryActive(ctx context.Context, id string, active bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET is_active = ?, updated_at = ? WHERE id = ?",
		active, toMillis(time.Now()), id)
	return checkAffected(res, err, ErrMsgFailedToUpdateCategory, domain.ErrCategoryNotFound, id)
}

// DeleteCategory removes the category. Foreign keys set the category of its
// participants and draw records to NULL.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	return checkAffected(res, err, ErrMsgFailedToDeleteCategory, domain.ErrCategoryNotFound, id)
}

func (s *Store) CountActiveParticipants(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT COALESCE(category_id, ''), COUNT(*) FROM participants WHERE is_active = 1 GROUP BY category_id")
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

// checkAffected wraps exec failures and maps zero affected rows to notFound
func checkAffected(res sql.Result, err error, errMsg string, notFound error, id string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", notFound, id)
	}
	return nil
}
