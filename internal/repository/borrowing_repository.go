package repository

import (
	"context"

	"gorm.io/gorm"

	"perpus/internal/model"
)

// BorrowingRepository defines borrowing persistence operations.
type BorrowingRepository interface {
	Create(ctx context.Context, borrowing *model.Borrowing) error
	Update(ctx context.Context, borrowing *model.Borrowing) error
	FindByID(ctx context.Context, id uint) (*model.Borrowing, error)
	FindActive(ctx context.Context, userID, bookID uint) (*model.Borrowing, error)
	List(ctx context.Context) ([]model.Borrowing, error)
}

type borrowingRepository struct {
	db *gorm.DB
}

// NewBorrowingRepository builds a GORM-backed repository.
func NewBorrowingRepository(db *gorm.DB) BorrowingRepository {
	return &borrowingRepository{db: db}
}

func (r *borrowingRepository) Create(ctx context.Context, borrowing *model.Borrowing) error {
	return r.db.WithContext(ctx).Create(borrowing).Error
}

func (r *borrowingRepository) Update(ctx context.Context, borrowing *model.Borrowing) error {
	return r.db.WithContext(ctx).Save(borrowing).Error
}

func (r *borrowingRepository) FindByID(ctx context.Context, id uint) (*model.Borrowing, error) {
	var borrowing model.Borrowing
	if err := r.db.WithContext(ctx).First(&borrowing, id).Error; err != nil {
		return nil, err
	}
	return &borrowing, nil
}

// FindActive returns the user's unreturned borrowing for the book, or
// gorm.ErrRecordNotFound when none exists.
func (r *borrowingRepository) FindActive(ctx context.Context, userID, bookID uint) (*model.Borrowing, error) {
	var borrowing model.Borrowing
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND returned = ?", userID, bookID, false).
		First(&borrowing).Error
	if err != nil {
		return nil, err
	}
	return &borrowing, nil
}

func (r *borrowingRepository) List(ctx context.Context) ([]model.Borrowing, error) {
	var borrowings []model.Borrowing
	if err := r.db.WithContext(ctx).Find(&borrowings).Error; err != nil {
		return nil, err
	}
	return borrowings, nil
}
