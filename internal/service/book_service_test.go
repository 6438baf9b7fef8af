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

func TestBookService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("FindByID", mock.Anything, uint(3)).
			Return(&model.Category{ID: 3, Name: "Fiksi"}, nil)
		bookRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).Return(nil)

		svc := NewBookService(bookRepo, categoryRepo, nil)
		book, err := svc.Create(context.Background(), CreateBookInput{
			Title:      "Laskar Pelangi",
			Summary:    "Sepuluh anak Belitung mengejar pendidikan.",
			Year:       "2005",
			Pages:      529,
			Stock:      5,
			CategoryID: 3,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Laskar Pelangi", book.Title)
		assert.Equal(t, uint(3), book.CategoryID)
		bookRepo.AssertExpectations(t)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("unknown category rejected before write", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("FindByID", mock.Anything, uint(3)).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewBookService(bookRepo, categoryRepo, nil)
		book, err := svc.Create(context.Background(), CreateBookInput{Title: "X", CategoryID: 3})

		assert.ErrorIs(t, err, errors.ErrCategoryNotFound)
		assert.Nil(t, book)
		bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookService_Update(t *testing.T) {
	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		categoryRepo := new(MockCategoryRepository)
		stock := 7
		bookRepo.On("UpdateFields", mock.Anything, uint(2), map[string]interface{}{"stock": 7}).Return(nil)
		bookRepo.On("FindByID", mock.Anything, uint(2)).
			Return(&model.Book{ID: 2, Title: "Laskar Pelangi", Stock: 7}, nil)

		svc := NewBookService(bookRepo, categoryRepo, nil)
		book, err := svc.Update(context.Background(), 2, UpdateBookInput{Stock: &stock})

		assert.NoError(t, err)
		assert.Equal(t, 7, book.Stock)
		bookRepo.AssertExpectations(t)
	})

	t.Run("category change is validated", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		categoryRepo := new(MockCategoryRepository)
		categoryID := uint(99)
		categoryRepo.On("FindByID", mock.Anything, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewBookService(bookRepo, categoryRepo, nil)
		book, err := svc.Update(context.Background(), 2, UpdateBookInput{CategoryID: &categoryID})

		assert.ErrorIs(t, err, errors.ErrCategoryNotFound)
		assert.Nil(t, book)
		bookRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing book", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		title := "Baru"
		bookRepo.On("UpdateFields", mock.Anything, uint(2), map[string]interface{}{"title": "Baru"}).
			Return(gorm.ErrRecordNotFound)

		svc := NewBookService(bookRepo, new(MockCategoryRepository), nil)
		book, err := svc.Update(context.Background(), 2, UpdateBookInput{Title: &title})

		assert.ErrorIs(t, err, errors.ErrBookNotFound)
		assert.Nil(t, book)
	})
}

func TestBookService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("Delete", mock.Anything, uint(2)).Return(nil)

		svc := NewBookService(bookRepo, new(MockCategoryRepository), nil)
		assert.NoError(t, svc.Delete(context.Background(), 2))
	})

	t.Run("missing book", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("Delete", mock.Anything, uint(2)).Return(gorm.ErrRecordNotFound)

		svc := NewBookService(bookRepo, new(MockCategoryRepository), nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), 2), errors.ErrBookNotFound)
	})
}

func TestBookService_Get(t *testing.T) {
	t.Run("cache miss falls through to repository", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("FindByID", mock.Anything, uint(2)).
			Return(&model.Book{ID: 2, Title: "Laskar Pelangi"}, nil)

		svc := NewBookService(bookRepo, new(MockCategoryRepository), nil)
		book, err := svc.Get(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, "Laskar Pelangi", book.Title)
	})

	t.Run("missing book", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("FindByID", mock.Anything, uint(2)).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewBookService(bookRepo, new(MockCategoryRepository), nil)
		book, err := svc.Get(context.Background(), 2)

		assert.ErrorIs(t, err, errors.ErrBookNotFound)
		assert.Nil(t, book)
	})
}
