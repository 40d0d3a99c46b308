package repository

import (
	"context"

	"vidyashare/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	// ListByBook returns every review record for a book; the rating
	// aggregates are recomputed over this full set.
	ListByBook(ctx context.Context, bookID string) ([]*entity.Review, error)
}
