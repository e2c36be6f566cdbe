package service

import (
	"context"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const maxCategoryNameLen = 100

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := cache.Aside(ctx, cache.CategoryListKey, &categories, cache.CategoryTTL, func() error {
		loaded, err := s.categoryRepo.List(ctx)
		if err != nil {
			return models.TranslateDBError(err, "category", 0)
		}
		categories = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "category", id)
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Category name is required")
	}
	if len(name) > maxCategoryNameLen {
		return nil, models.NewValidationError("Category name too long (max 100 characters)")
	}

	category := &models.Category{Name: name, Description: in.Description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, models.TranslateDBError(err, "category", 0)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Category name is required")
	}
	if len(name) > maxCategoryNameLen {
		return nil, models.NewValidationError("Category name too long (max 100 characters)")
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "category", id)
	}
	category.Name = name
	category.Description = in.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, models.TranslateDBError(err, "category", id)
	}
	return category, nil
}

// DeleteCategory removes the category. A category that still has posts cannot
// be deleted; the foreign key violation comes back as an invalid reference
// error.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return models.TranslateDBError(err, "category", id)
	}
	return nil
}
