package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"perpus/internal/model"
)

// BookRepository defines book persistence operations.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Book, error)
	AdjustStock(ctx context.Context, id uint, delta int) error
	List(ctx context.Context) ([]model.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository builds a GORM-backed repository.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// UpdateFields applies a partial update; only the supplied columns change.
func (r *bookRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Book{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Book{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// FindByIDForUpdate takes a row-level lock on the book. Only meaningful
// inside a transaction; the borrowing workflow uses it to serialize stock
// checks against concurrent borrows of the same book.
func (r *bookRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// AdjustStock shifts the stock counter by delta using a relative update.
func (r *bookRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	res := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
