package usecase

import (
	"context"
	"time"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/pkg/errors"
)

type TransactionUseCase struct {
	transactionRepo repository.TransactionRepository
	bookRepo        repository.BookRepository
	userRepo        repository.UserRepository
}

func NewTransactionUseCase(
	transactionRepo repository.TransactionRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		bookRepo:        bookRepo,
		userRepo:        userRepo,
	}
}

type RentBookInput struct {
	BookID         string
	RentalDuration int // in months
}

type RentResult struct {
	Transaction *entity.Transaction
	// PaymentRequired is the first month's rental plus the advance. It is
	// returned to the caller and never persisted.
	PaymentRequired float64
}

func (uc *TransactionUseCase) CreateRental(ctx context.Context, buyerID string, input RentBookInput) (*RentResult, error) {
	book, err := uc.bookRepo.GetByID(ctx, input.BookID)
	if err != nil {
		return nil, err
	}

	// No inventory lock is taken between this check and the create below;
	// two concurrent rentals of the same book can both pass it.
	if !book.Availability.IsAvailable {
		return nil, errors.BadRequest("Book is not available for rent", nil)
	}

	monthlyRental := MonthlyRental(book.MRP)
	advanceAmount := AdvanceAmount(book.MRP)
	totalAmount := monthlyRental * float64(input.RentalDuration)

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	finalAdvance := advanceAmount
	if buyer.IsPremium {
		finalAdvance = 0
	}

	now := time.Now()
	transaction := &entity.Transaction{
		BookID:         book.ID,
		SellerID:       book.OwnerID,
		BuyerID:        buyerID,
		Type:           entity.TransactionTypeRent,
		Amount:         totalAmount,
		AdvanceAmount:  finalAdvance,
		MonthlyRental:  monthlyRental,
		RentalDuration: input.RentalDuration,
		Status:         entity.TransactionStatusPending,
		Rental: entity.RentalPeriod{
			StartDate: now,
			EndDate:   now.Add(time.Duration(input.RentalDuration) * RentalMonth),
		},
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return &RentResult{
		Transaction:     transaction,
		PaymentRequired: finalAdvance + monthlyRental,
	}, nil
}

// GetTransaction returns a transaction to one of its two parties. Anyone
// else gets a not-found, so the response does not confirm the record
// exists.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, callerID, id string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if transaction.BuyerID != callerID && transaction.SellerID != callerID {
		return nil, errors.NotFound("Transaction", nil)
	}

	return transaction, nil
}
