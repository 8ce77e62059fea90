package services

import (
	"context"
	"slices"
	"strings"
	"sync"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/storage"
	"fintrack/internal/uuid"
	"fintrack/internal/validator"
)

const defaultCategoryColor = "#6b7280"

// categoryService handles category-related business logic.
type categoryService struct {
	gw storage.Gateway
	mu *sync.Mutex
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(gw storage.Gateway, mu *sync.Mutex) CategoryServicer {
	return &categoryService{gw: gw, mu: lockOrNew(mu)}
}

// ListCategories returns the stored categories, or the defaults when none
// were ever saved. kind narrows the list when set.
func (s *categoryService) ListCategories(ctx context.Context, kind *models.Kind) ([]models.Category, error) {
	cats, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return cats, nil
	}

	out := make([]models.Category, 0, len(cats))
	for _, c := range cats {
		if c.Kind == *kind {
			out = append(out, c)
		}
	}
	return out, nil
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, name string, kind models.Kind, color, icon string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if !kind.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}
	if color == "" {
		color = defaultCategoryColor
	}
	if !validator.IsHexColor(color) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "color must be a hex colour like #10b981")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	// Names are unique per type, ignoring case
	for _, c := range cats {
		if c.Kind == kind && strings.EqualFold(c.Name, name) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}

	category := models.Category{
		ID:    uuid.New(),
		Name:  name,
		Kind:  kind,
		Color: color,
		Icon:  strings.TrimSpace(icon),
	}
	if err := s.gw.SaveCategories(ctx, append(cats, category)); err != nil {
		return nil, storageError(err)
	}

	return &category, nil
}

// DeleteCategory removes a category. Transactions keep their category name.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.load(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(cats, func(c models.Category) bool { return c.ID == id })
	if idx < 0 {
		return apperrors.ErrCategoryNotFound
	}

	if err := s.gw.SaveCategories(ctx, slices.Delete(cats, idx, idx+1)); err != nil {
		return storageError(err)
	}
	return nil
}

// ResetCategories stores and returns the default categories.
func (s *categoryService) ResetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := models.DefaultCategories()
	if err := s.gw.SaveCategories(ctx, defaults); err != nil {
		return nil, storageError(err)
	}
	return defaults, nil
}

func (s *categoryService) load(ctx context.Context) ([]models.Category, error) {
	cats, err := s.gw.LoadCategories(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	if cats == nil {
		return models.DefaultCategories(), nil
	}
	return cats, nil
}
