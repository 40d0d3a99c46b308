package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyashare/internal/domain/entity"
)

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	bookRepo := newFakeBookRepo()
	transactionRepo := newFakeTransactionRepo()
	uc := NewUserUseCase(userRepo, bookRepo, transactionRepo)

	user := &entity.User{FirstName: "Asha", Email: "asha@example.com", Rating: 4.2}
	require.NoError(t, userRepo.Create(context.Background(), user))

	for i := 0; i < 3; i++ {
		require.NoError(t, bookRepo.Create(context.Background(), &entity.Book{
			Title:   "Listed",
			OwnerID: user.ID,
		}))
	}

	require.NoError(t, transactionRepo.Create(context.Background(), &entity.Transaction{
		BookID:  "book-x",
		BuyerID: user.ID,
		Type:    entity.TransactionTypeRent,
		Status:  entity.TransactionStatusActive,
	}))

	// Earnings count only completed sales, not pending ones.
	require.NoError(t, transactionRepo.Create(context.Background(), &entity.Transaction{
		BookID:   "book-y",
		SellerID: user.ID,
		Type:     entity.TransactionTypeRent,
		Status:   entity.TransactionStatusCompleted,
		Amount:   450,
	}))
	require.NoError(t, transactionRepo.Create(context.Background(), &entity.Transaction{
		BookID:   "book-z",
		SellerID: user.ID,
		Type:     entity.TransactionTypeRent,
		Status:   entity.TransactionStatusPending,
		Amount:   9999,
	}))

	profile, stats, err := uc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.FirstName)
	assert.Equal(t, int64(3), stats.BooksListed)
	assert.Equal(t, int64(1), stats.BooksRented)
	assert.Equal(t, float64(450), stats.TotalEarned)
	assert.Equal(t, 4.2, stats.Rating)
}

func TestUpdateProfileStripsProtectedFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	bookRepo := newFakeBookRepo()
	transactionRepo := newFakeTransactionRepo()
	uc := NewUserUseCase(userRepo, bookRepo, transactionRepo)

	user := &entity.User{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Password:  "digest",
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	updated, err := uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"firstName": "Aisha",
		"city":      "Mumbai",
		"email":     "evil@example.com",
		"password":  "hijacked",
		"id":        "user-999",
	})
	require.NoError(t, err)

	assert.Equal(t, "Aisha", updated.FirstName)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "asha@example.com", updated.Email)
	assert.Equal(t, "digest", updated.Password)
	assert.Equal(t, user.ID, updated.ID)
}

func TestUpdateProfileEmptyAfterStripping(t *testing.T) {
	userRepo := newFakeUserRepo()
	bookRepo := newFakeBookRepo()
	transactionRepo := newFakeTransactionRepo()
	uc := NewUserUseCase(userRepo, bookRepo, transactionRepo)

	user := &entity.User{FirstName: "Asha", Email: "asha@example.com"}
	require.NoError(t, userRepo.Create(context.Background(), user))

	updated, err := uc.UpdateProfile(context.Background(), user.ID, map[string]interface{}{
		"email":    "evil@example.com",
		"password": "hijacked",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", updated.FirstName)
	assert.Equal(t, "asha@example.com", updated.Email)
}
