package repository

import (
	"context"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Categories defines the interface for category persistence.
// Lookups return (nil, nil) when the row does not exist.
type Categories interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	// UpdateCategory returns domain.ErrCategoryNotFound when no row matched
	UpdateCategory(ctx context.Context, category *domain.Category) error
	SetCategoryActive(ctx context.Context, id string, active bool) error
	DeleteCategory(ctx context.Context, id string) error

	// CountActiveParticipants returns active participant counts keyed by
	// category id. Uncategorized participants are counted under "".
	CountActiveParticipants(ctx context.Context) (map[string]int, error)
}
