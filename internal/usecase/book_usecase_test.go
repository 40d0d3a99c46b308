package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyashare/internal/domain/entity"
)

func TestCreateBook(t *testing.T) {
	userRepo := newFakeUserRepo()
	bookRepo := newFakeBookRepo()
	uc := NewBookUseCase(bookRepo, userRepo)

	owner := &entity.User{FirstName: "Ravi", Email: "ravi@example.com"}
	require.NoError(t, userRepo.Create(context.Background(), owner))

	book, err := uc.CreateBook(context.Background(), owner.ID, CreateBookInput{
		Title:        "Structure and Interpretation of Computer Programs",
		Author:       "Abelson",
		Category:     "engineering",
		Language:     "english",
		MRP:          1200,
		SellingPrice: 700,
		ListingType:  "rent",
		Condition:    "good",
		Description:  "Second edition, lightly annotated",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, book.ID)
	// The owner is always the caller, regardless of the request body.
	assert.Equal(t, owner.ID, book.OwnerID)
	assert.True(t, book.Availability.IsAvailable)
	assert.Equal(t, 0, book.Views)
	assert.False(t, book.CreatedAt.IsZero())
}

func TestGetBookIncrementsViews(t *testing.T) {
	userRepo := newFakeUserRepo()
	bookRepo := newFakeBookRepo()
	uc := NewBookUseCase(bookRepo, userRepo)

	owner := &entity.User{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com", Phone: "9876543210"}
	require.NoError(t, userRepo.Create(context.Background(), owner))

	created, err := uc.CreateBook(context.Background(), owner.ID, CreateBookInput{
		Title:        "Gödel, Escher, Bach",
		Author:       "Hofstadter",
		MRP:          900,
		SellingPrice: 500,
		ListingType:  "sell",
		Condition:    "excellent",
	})
	require.NoError(t, err)

	first, err := uc.GetBook(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := uc.GetBook(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)

	// The detail view resolves the owner's contact projection.
	require.NotNil(t, second.Owner)
	assert.Equal(t, "Ravi", second.Owner.FirstName)
	assert.Equal(t, "ravi@example.com", second.Owner.Email)
	assert.Equal(t, "9876543210", second.Owner.Phone)
}

func TestListBooksResolvesOwners(t *testing.T) {
	userRepo := newFakeUserRepo()
	bookRepo := newFakeBookRepo()
	uc := NewBookUseCase(bookRepo, userRepo)

	owner := &entity.User{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com", Rating: 4.5}
	require.NoError(t, userRepo.Create(context.Background(), owner))

	for _, title := range []string{"Book One", "Book Two"} {
		_, err := uc.CreateBook(context.Background(), owner.ID, CreateBookInput{
			Title:        title,
			Author:       "Someone",
			MRP:          500,
			SellingPrice: 300,
			ListingType:  "rent",
			Condition:    "good",
		})
		require.NoError(t, err)
	}

	summaries, total, err := uc.ListBooks(context.Background(), ListBooksInput{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, summaries, 2)
	for _, summary := range summaries {
		require.NotNil(t, summary.Owner)
		assert.Equal(t, owner.ID, summary.Owner.ID)
		assert.Equal(t, 4.5, summary.Owner.Rating)
	}
}

func TestListBooksFiltersAndSorts(t *testing.T) {
	userRepo := newFakeUserRepo()
	bookRepo := newFakeBookRepo()
	uc := NewBookUseCase(bookRepo, userRepo)

	owner := &entity.User{FirstName: "Ravi", Email: "ravi@example.com"}
	require.NoError(t, userRepo.Create(context.Background(), owner))

	fixtures := []struct {
		title    string
		category string
		price    float64
	}{
		{"Midnight's Children", "fiction", 300},
		{"The God of Small Things", "fiction", 100},
		{"A Brief History of Time", "science", 200},
	}
	for _, f := range fixtures {
		_, err := uc.CreateBook(context.Background(), owner.ID, CreateBookInput{
			Title:        f.title,
			Author:       "Someone",
			Category:     f.category,
			MRP:          f.price * 2,
			SellingPrice: f.price,
			ListingType:  "rent",
			Condition:    "good",
		})
		require.NoError(t, err)
	}

	summaries, total, err := uc.ListBooks(context.Background(), ListBooksInput{
		Category: "fiction",
		Sort:     "price_low",
		Page:     1,
		Limit:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, summaries, 2)
	assert.Equal(t, "The God of Small Things", summaries[0].Title)
	assert.Equal(t, "Midnight's Children", summaries[1].Title)
	for _, summary := range summaries {
		assert.Equal(t, "fiction", summary.Category)
	}
}
