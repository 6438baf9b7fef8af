package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"perpus/internal/cache"
	"perpus/internal/errors"
	"perpus/internal/metrics"
	"perpus/internal/model"
	"perpus/internal/repository"
)

// BorrowResult is the response shape for borrow and return operations.
type BorrowResult struct {
	Borrowing *model.Borrowing  `json:"peminjaman"`
	User      model.UserSummary `json:"user"`
	Book      *model.Book       `json:"buku"`
}

// BorrowingDetail denormalizes a borrowing with its user and book.
type BorrowingDetail struct {
	model.Borrowing
	Book *model.Book       `json:"book"`
	User model.UserSummary `json:"user"`
}

// BorrowingService implements the loan workflow. Borrow and Return run
// inside a single transaction with the book row locked, so the active-loan
// check, the borrowing write, and the stock mutation cannot interleave with
// a concurrent request for the same book.
type BorrowingService interface {
	Borrow(ctx context.Context, userID, bookID uint, loanDate, dueDate *time.Time) (*BorrowResult, error)
	Return(ctx context.Context, userID, bookID uint) (*BorrowResult, error)
	Update(ctx context.Context, id uint, loanDate, dueDate *time.Time) (*model.Borrowing, error)
	Get(ctx context.Context, id uint) (*BorrowingDetail, error)
	List(ctx context.Context) ([]model.Borrowing, error)
}

type borrowingService struct {
	userRepo      repository.UserRepository
	bookRepo      repository.BookRepository
	borrowingRepo repository.BorrowingRepository
	txRunner      repository.TxRunner
	cache         *cache.Client
	now           func() time.Time
}

// NewBorrowingService creates a new borrowing service.
func NewBorrowingService(
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	borrowingRepo repository.BorrowingRepository,
	txRunner repository.TxRunner,
	cache *cache.Client,
) BorrowingService {
	return &borrowingService{
		userRepo:      userRepo,
		bookRepo:      bookRepo,
		borrowingRepo: borrowingRepo,
		txRunner:      txRunner,
		cache:         cache,
		now:           time.Now,
	}
}

// Borrow creates a loan and decrements stock atomically.
func (s *borrowingService) Borrow(ctx context.Context, userID, bookID uint, loanDate, dueDate *time.Time) (*BorrowResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	var (
		borrowing *model.Borrowing
		book      *model.Book
	)
	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		book, err = tx.Books.FindByIDForUpdate(ctx, bookID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBookNotFound
			}
			return fmt.Errorf("lock book: %w", err)
		}

		_, err = tx.Borrowings.FindActive(ctx, userID, bookID)
		if err == nil {
			return errors.ErrAlreadyBorrowed
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check active borrowing: %w", err)
		}

		if book.Stock == 0 {
			return errors.ErrOutOfStock
		}

		borrowing = s.newBorrowing(userID, bookID, loanDate, dueDate)
		if err := tx.Borrowings.Create(ctx, borrowing); err != nil {
			return fmt.Errorf("create borrowing: %w", err)
		}
		if err := tx.Books.AdjustStock(ctx, bookID, -1); err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		book.Stock--
		return nil
	})
	if err != nil {
		metrics.BorrowsTotal.WithLabelValues(borrowResultLabel(err)).Inc()
		return nil, err
	}
	metrics.BorrowsTotal.WithLabelValues("ok").Inc()
	_ = s.cache.Delete(ctx, fmt.Sprintf("book:%d", bookID))

	return &BorrowResult{Borrowing: borrowing, User: user.Summary(), Book: book}, nil
}

// Return closes the active loan and increments stock atomically.
func (s *borrowingService) Return(ctx context.Context, userID, bookID uint) (*BorrowResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	var (
		borrowing *model.Borrowing
		book      *model.Book
	)
	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		book, err = tx.Books.FindByIDForUpdate(ctx, bookID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBookNotFound
			}
			return fmt.Errorf("lock book: %w", err)
		}

		borrowing, err = tx.Borrowings.FindActive(ctx, userID, bookID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBorrowingNotFound
			}
			return fmt.Errorf("find active borrowing: %w", err)
		}

		borrowing.Returned = true
		if err := tx.Borrowings.Update(ctx, borrowing); err != nil {
			return fmt.Errorf("close borrowing: %w", err)
		}
		if err := tx.Books.AdjustStock(ctx, bookID, 1); err != nil {
			return fmt.Errorf("increment stock: %w", err)
		}
		book.Stock++
		return nil
	})
	if err != nil {
		metrics.ReturnsTotal.WithLabelValues(returnResultLabel(err)).Inc()
		return nil, err
	}
	metrics.ReturnsTotal.WithLabelValues("ok").Inc()
	_ = s.cache.Delete(ctx, fmt.Sprintf("book:%d", bookID))

	return &BorrowResult{Borrowing: borrowing, User: user.Summary(), Book: book}, nil
}

// Update mutates loan and due dates on an existing record. Stock is never
// touched here.
func (s *borrowingService) Update(ctx context.Context, id uint, loanDate, dueDate *time.Time) (*model.Borrowing, error) {
	borrowing, err := s.borrowingRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBorrowingNotFound
		}
		return nil, fmt.Errorf("find borrowing: %w", err)
	}

	if loanDate != nil {
		borrowing.LoanDate = *loanDate
	}
	if dueDate != nil {
		borrowing.DueDate = *dueDate
	}
	if err := s.borrowingRepo.Update(ctx, borrowing); err != nil {
		return nil, fmt.Errorf("update borrowing: %w", err)
	}
	return borrowing, nil
}

// Get denormalizes the borrowing with its book and a user summary.
func (s *borrowingService) Get(ctx context.Context, id uint) (*BorrowingDetail, error) {
	borrowing, err := s.borrowingRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBorrowingNotFound
		}
		return nil, fmt.Errorf("find borrowing: %w", err)
	}

	detail := &BorrowingDetail{Borrowing: *borrowing}
	if book, err := s.bookRepo.FindByID(ctx, borrowing.BookID); err == nil {
		detail.Book = book
	}
	if user, err := s.userRepo.FindByID(ctx, borrowing.UserID); err == nil {
		detail.User = user.Summary()
	}
	return detail, nil
}

func (s *borrowingService) List(ctx context.Context) ([]model.Borrowing, error) {
	return s.borrowingRepo.List(ctx)
}

func (s *borrowingService) newBorrowing(userID, bookID uint, loanDate, dueDate *time.Time) *model.Borrowing {
	loan := s.now()
	if loanDate != nil {
		loan = *loanDate
	}
	due := loan.Add(model.LoanPeriod)
	if dueDate != nil {
		due = *dueDate
	}
	return &model.Borrowing{
		LoanDate: loan,
		DueDate:  due,
		Returned: false,
		UserID:   userID,
		BookID:   bookID,
	}
}

func borrowResultLabel(err error) string {
	switch err {
	case errors.ErrAlreadyBorrowed:
		return "already_borrowed"
	case errors.ErrOutOfStock:
		return "out_of_stock"
	case errors.ErrBookNotFound:
		return "not_found"
	default:
		return "error"
	}
}

func returnResultLabel(err error) string {
	switch err {
	case errors.ErrBookNotFound, errors.ErrBorrowingNotFound:
		return "not_found"
	default:
		return "error"
	}
}
