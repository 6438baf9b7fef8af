package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"perpus/internal/errors"
	"perpus/internal/model"
)

func TestCategoryService_Create(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Fiksi"
	})).Return(nil)

	svc := NewCategoryService(categoryRepo)
	category, err := svc.Create(context.Background(), "Fiksi")

	assert.NoError(t, err)
	assert.Equal(t, "Fiksi", category.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_Update(t *testing.T) {
	t.Run("success renames category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("FindByID", mock.Anything, uint(3)).
			Return(&model.Category{ID: 3, Name: "Fiksi"}, nil)
		categoryRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
			return c.Name == "Non-Fiksi"
		})).Return(nil)

		svc := NewCategoryService(categoryRepo)
		category, err := svc.Update(context.Background(), 3, "Non-Fiksi")

		assert.NoError(t, err)
		assert.Equal(t, "Non-Fiksi", category.Name)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("missing category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("FindByID", mock.Anything, uint(3)).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewCategoryService(categoryRepo)
		category, err := svc.Update(context.Background(), 3, "Non-Fiksi")

		assert.ErrorIs(t, err, errors.ErrCategoryNotFound)
		assert.Nil(t, category)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

		svc := NewCategoryService(categoryRepo)
		assert.NoError(t, svc.Delete(context.Background(), 3))
	})

	t.Run("missing category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("Delete", mock.Anything, uint(3)).Return(gorm.ErrRecordNotFound)

		svc := NewCategoryService(categoryRepo)
		assert.ErrorIs(t, svc.Delete(context.Background(), 3), errors.ErrCategoryNotFound)
	})
}

func TestCategoryService_Get(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("FindByIDWithBooks", mock.Anything, uint(3)).
		Return(&model.Category{
			ID:    3,
			Name:  "Fiksi",
			Books: []model.Book{{ID: 2, Title: "Laskar Pelangi", CategoryID: 3}},
		}, nil)

	svc := NewCategoryService(categoryRepo)
	category, err := svc.Get(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, category.Books, 1)
	assert.Equal(t, "Laskar Pelangi", category.Books[0].Title)
}
