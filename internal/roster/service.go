// Package roster manages categories and participants around the draw engine:
// CRUD, CSV import and export, and draw history.
package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// Repository is the persistence surface the roster needs
type Repository interface {
	repository.Categories
	repository.Participants
	repository.DrawHistory
}

// Service defines the interface for roster operations
type Service interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error)
	SetCategoryActive(ctx context.Context, id string, active bool) error
	DeleteCategory(ctx context.Context, id string) error
	ActiveParticipantCounts(ctx context.Context) (map[string]int, error)

	ListParticipants(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error)
	GetParticipant(ctx context.Context, id string) (*domain.Participant, error)
	CreateParticipant(ctx context.Context, in domain.NewParticipant) (*domain.Participant, error)
	UpdateParticipant(ctx context.Context, id string, in domain.NewParticipant) (*domain.Participant, error)
	SetParticipantActive(ctx context.Context, id string, active bool) error
	DeleteParticipant(ctx context.Context, id string) error

	ImportParticipants(ctx context.Context, csvData string, categoryID *string) (*domain.ImportResult, error)
	Export(ctx context.Context, exportType domain.ExportType, categoryID *string) (*domain.ExportFile, error)
	ListDrawRecords(ctx context.Context, filter domain.DrawRecordFilter) ([]domain.DrawRecord, error)

	CacheStats() CacheStats
}

// ExtraInfoValidator checks participant extra info before it is saved
type ExtraInfoValidator interface {
	ValidateExtraInfo(info map[string]interface{}) error
}

// Option customizes a roster service
type Option func(*service)

// WithExtraInfoValidator rejects participants whose supplied extra info
// fails v. Participants saved without extra info are not checked.
func WithExtraInfoValidator(v ExtraInfoValidator) Option {
	return func(s *service) {
		s.extraInfo = v
	}
}

type service struct {
	repo      Repository
	cache     *categoryCache
	extraInfo ExtraInfoValidator
	now       func() time.Time
	newID     func() string
}

// NewService creates a new roster service
func NewService(repo Repository, cacheCfg CacheConfig, opts ...Option) Service {
	s := &service{
		repo:  repo,
		cache: newCategoryCache(cacheCfg),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp truncates to milliseconds, the coarsest precision of the backends
func (s *service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// ==================== Categories ====================

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCategories, err)
	}
	return categories, nil
}

func (s *service) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if category, ok := s.cache.Get(id); ok {
		logger.FromContext(ctx).Debug(LogMsgCategoryCacheHit, "category_id", id)
		return category, nil
	}

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetCategory, err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}

	s.cache.Set(category)
	return category, nil
}

func (s *service) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	now := s.timestamp()
	category := &domain.Category{
		ID:          s.newID(),
		Name:        name,
		Description: trimmedPtr(in.Description),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateCategory, err)
	}

	s.cache.Set(category)
	logger.FromContext(ctx).Info(LogMsgCategoryCreated, "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = trimmedPtr(in.Description)
	category.UpdatedAt = s.timestamp()

	s.cache.Invalidate(id)
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUpdateCategory, err)
	}
	return category, nil
}

func (s *service) SetCategoryActive(ctx context.Context, id string, active bool) error {
	s.cache.Invalidate(id)
	if err := s.repo.SetCategoryActive(ctx, id, active); err != nil {
		return fmt.Errorf("%s: %w", ErrContextUpdateCategory, err)
	}
	return nil
}

// DeleteCategory refuses while the category has active participants.
// Inactive participants are kept and become uncategorized.
func (s *service) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}

	counts, err := s.repo.CountActiveParticipants(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextCountActive, err)
	}
	if n := counts[id]; n > 0 {
		return fmt.Errorf("%w: %d active", domain.ErrCategoryInUse, n)
	}

	s.cache.Invalidate(id)
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteCategory, err)
	}

	logger.FromContext(ctx).Info(LogMsgCategoryDeleted, "category_id", id)
	return nil
}

func (s *service) ActiveParticipantCounts(ctx context.Context) (map[string]int, error) {
	counts, err := s.repo.CountActiveParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCountActive, err)
	}
	return counts, nil
}

// ==================== Participants ====================

func (s *service) ListParticipants(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	participants, err := s.repo.ListParticipants(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListParticipants, err)
	}
	return participants, nil
}

func (s *service) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	participant, err := s.repo.GetParticipant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetParticipant, err)
	}
	if participant == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
	}
	return participant, nil
}

func (s *service) CreateParticipant(ctx context.Context, in domain.NewParticipant) (*domain.Participant, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if err := s.checkExtraInfo(in.ExtraInfo); err != nil {
		return nil, err
	}
	categoryID := trimmedPtr(in.CategoryID)
	if categoryID != nil {
		if _, err := s.GetCategory(ctx, *categoryID); err != nil {
			return nil, err
		}
	}

	now := s.timestamp()
	participant := &domain.Participant{
		ID:         s.newID(),
		Name:       name,
		CategoryID: categoryID,
		ExtraInfo:  in.ExtraInfo,
		IsActive:   in.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveParticipant, err)
	}

	logger.FromContext(ctx).Info(LogMsgParticipantCreated, "participant_id", participant.ID, "category_id", domain.StringValue(categoryID))
	return participant, nil
}

// UpdateParticipant replaces name, category, extra info and active flag.
// Draw records keep the name the participant had when drawn.
func (s *service) UpdateParticipant(ctx context.Context, id string, in domain.NewParticipant) (*domain.Participant, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	if err := s.checkExtraInfo(in.ExtraInfo); err != nil {
		return nil, err
	}

	participant, err := s.GetParticipant(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryID := trimmedPtr(in.CategoryID)
	if categoryID != nil {
		if _, err := s.GetCategory(ctx, *categoryID); err != nil {
			return nil, err
		}
	}

	participant.Name = name
	participant.CategoryID = categoryID
	participant.IsActive = in.IsActive
	if in.ExtraInfo != nil {
		participant.ExtraInfo = in.ExtraInfo
	}
	participant.UpdatedAt = s.timestamp()

	if err := s.repo.UpdateParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveParticipant, err)
	}
	return participant, nil
}

func (s *service) SetParticipantActive(ctx context.Context, id string, active bool) error {
	if err := s.repo.SetParticipantActive(ctx, id, active); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveParticipant, err)
	}
	return nil
}

func (s *service) DeleteParticipant(ctx context.Context, id string) error {
	if err := s.repo.DeleteParticipant(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveParticipant, err)
	}
	logger.FromContext(ctx).Info(LogMsgParticipantDeleted, "participant_id", id)
	return nil
}

// ==================== History ====================

func (s *service) ListDrawRecords(ctx context.Context, filter domain.DrawRecordFilter) ([]domain.DrawRecord, error) {
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: "+ErrFmtNegativeLimit, domain.ErrInvalidInput, filter.Limit)
	}
	filter.Search = strings.TrimSpace(filter.Search)

	records, err := s.repo.ListDrawRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListDrawRecords, err)
	}
	return records, nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}

func (s *service) checkExtraInfo(info map[string]interface{}) error {
	if s.extraInfo == nil || info == nil {
		return nil
	}
	return s.extraInfo.ValidateExtraInfo(info)
}

func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

func trimmedPtr(p *string) *string {
	if p == nil {
		return nil
	}
	return domain.StringPtr(strings.TrimSpace(*p))
}
