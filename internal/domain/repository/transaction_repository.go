package repository

import (
	"context"

	"vidyashare/internal/domain/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// FindByBookAndBuyer returns the first transaction linking the buyer to
	// the book with one of the given statuses, or a not-found error.
	FindByBookAndBuyer(ctx context.Context, bookID, buyerID string, statuses []string) (*entity.Transaction, error)
	CountByBuyer(ctx context.Context, buyerID, transactionType string) (int64, error)
	// SumAmountBySeller totals transaction amounts for a seller in the
	// given status; 0 when there are none.
	SumAmountBySeller(ctx context.Context, sellerID, status string) (float64, error)
}
