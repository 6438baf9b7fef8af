package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"perpus/internal/cache"
	"perpus/internal/errors"
	"perpus/internal/model"
	"perpus/internal/repository"
)

const bookCacheTTL = 5 * time.Minute

// CreateBookInput carries a validated create payload.
type CreateBookInput struct {
	Title      string
	Summary    string
	Year       string
	Pages      int
	Stock      int
	CategoryID uint
}

// UpdateBookInput carries a partial update; nil fields stay untouched.
type UpdateBookInput struct {
	Title      *string
	Summary    *string
	Year       *string
	Pages      *int
	Stock      *int
	CategoryID *uint
}

// BookService exposes book catalog operations.
type BookService interface {
	Create(ctx context.Context, input CreateBookInput) (*model.Book, error)
	Update(ctx context.Context, id uint, input UpdateBookInput) (*model.Book, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
}

type bookService struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.Client
}

// NewBookService creates a new book service.
func NewBookService(bookRepo repository.BookRepository, categoryRepo repository.CategoryRepository, cache *cache.Client) BookService {
	return &bookService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

func (s *bookService) cacheKey(id uint) string {
	return fmt.Sprintf("book:%d", id)
}

// Create validates the category reference before any write.
func (s *bookService) Create(ctx context.Context, input CreateBookInput) (*model.Book, error) {
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:      input.Title,
		Summary:    input.Summary,
		Year:       input.Year,
		Pages:      input.Pages,
		Stock:      input.Stock,
		CategoryID: input.CategoryID,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// Update applies only the supplied fields.
func (s *bookService) Update(ctx context.Context, id uint, input UpdateBookInput) (*model.Book, error) {
	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Summary != nil {
		fields["summary"] = *input.Summary
	}
	if input.Year != nil {
		fields["year"] = *input.Year
	}
	if input.Pages != nil {
		fields["pages"] = *input.Pages
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if input.CategoryID != nil {
		if err := s.checkCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		fields["category_id"] = *input.CategoryID
	}

	if len(fields) > 0 {
		if err := s.bookRepo.UpdateFields(ctx, id, fields); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrBookNotFound
			}
			return nil, fmt.Errorf("update book: %w", err)
		}
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookNotFound
		}
		return nil, fmt.Errorf("reload book: %w", err)
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id uint) error {
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrBookNotFound
		}
		return fmt.Errorf("delete book: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Get reads through the cache. Mutations invalidate the key.
func (s *bookService) Get(ctx context.Context, id uint) (*model.Book, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Book
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	if payload, err := json.Marshal(book); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, bookCacheTTL)
	}
	return book, nil
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *bookService) checkCategory(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}
