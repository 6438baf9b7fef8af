package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"perpus/internal/errors"
	"perpus/internal/model"
	"perpus/internal/repository"
)

// CategoryService exposes category catalog operations.
type CategoryService interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uint, name string) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, name string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete hard-deletes. A category still referenced by books fails with the
// database's foreign key error, surfaced as an upstream failure.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Get returns the category together with its books.
func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByIDWithBooks(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}
