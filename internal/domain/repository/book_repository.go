package repository

import (
	"context"

	"vidyashare/internal/domain/entity"
)

// BookQuery describes a filtered, sorted, paginated listing request.
type BookQuery struct {
	Category    string
	Language    string
	Condition   string
	ListingType string
	MinPrice    float64
	MaxPrice    float64
	// Search is a case-insensitive substring match over title, author and
	// isbn.
	Search string
	// Sort is one of price_low, price_high, newest, rating. Empty means
	// newest first.
	Sort   string
	Limit  int
	Offset int
}

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	GetByID(ctx context.Context, id string) (*entity.Book, error)
	List(ctx context.Context, query BookQuery) ([]*entity.Book, int64, error)
	Update(ctx context.Context, book *entity.Book) error
	// IncrementViews bumps the view counter by one using the store's
	// atomic increment.
	IncrementViews(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}
