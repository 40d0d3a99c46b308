package usecase

import (
	"context"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
)

type UserUseCase struct {
	userRepo        repository.UserRepository
	bookRepo        repository.BookRepository
	transactionRepo repository.TransactionRepository
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	transactionRepo repository.TransactionRepository,
) *UserUseCase {
	return &UserUseCase{
		userRepo:        userRepo,
		bookRepo:        bookRepo,
		transactionRepo: transactionRepo,
	}
}

// ProfileStats are derived per request, never stored.
type ProfileStats struct {
	BooksListed int64   `json:"booksListed"`
	BooksRented int64   `json:"booksRented"`
	TotalEarned float64 `json:"totalEarned"`
	Rating      float64 `json:"rating"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, *ProfileStats, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	booksListed, err := uc.bookRepo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	booksRented, err := uc.transactionRepo.CountByBuyer(ctx, userID, entity.TransactionTypeRent)
	if err != nil {
		return nil, nil, err
	}

	totalEarned, err := uc.transactionRepo.SumAmountBySeller(ctx, userID, entity.TransactionStatusCompleted)
	if err != nil {
		return nil, nil, err
	}

	return user, &ProfileStats{
		BooksListed: booksListed,
		BooksRented: booksRented,
		TotalEarned: totalEarned,
		Rating:      user.Rating,
	}, nil
}

// UpdateProfile applies a partial update. Password and email changes need
// their own verification flows, so those fields are silently stripped
// before the write.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	delete(updates, "password")
	delete(updates, "email")
	delete(updates, "id")

	if len(updates) > 0 {
		if err := uc.userRepo.UpdateFields(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return uc.userRepo.GetByID(ctx, userID)
}
