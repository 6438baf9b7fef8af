package repository

import (
	"context"

	"gorm.io/gorm"
)

// Tx bundles transaction-scoped repositories for the borrowing workflow.
// The loan-state check, the borrowing write, and the stock mutation must
// share one transaction; the book row lock serializes concurrent requests
// for the same book.
type Tx struct {
	Books      BookRepository
	Borrowings BorrowingRepository
}

// TxRunner runs a function inside a single database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type txRunner struct {
	db *gorm.DB
}

// NewTxRunner builds a GORM-backed transaction runner.
func NewTxRunner(db *gorm.DB) TxRunner {
	return &txRunner{db: db}
}

func (r *txRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return r.db.WithContext(ctx).Transaction(func(txDB *gorm.DB) error {
		return fn(ctx, Tx{
			Books:      NewBookRepository(txDB),
			Borrowings: NewBorrowingRepository(txDB),
		})
	})
}
