package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo      repository.ReviewRepository
	transactionRepo repository.TransactionRepository
	bookRepo        repository.BookRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	transactionRepo repository.TransactionRepository,
	bookRepo repository.BookRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:      reviewRepo,
		transactionRepo: transactionRepo,
		bookRepo:        bookRepo,
	}
}

type CreateReviewInput struct {
	Rating  int
	Comment string
	Images  []string
}

// AddBookReview persists a book review and recomputes the book's rating
// aggregates. Only a buyer with an active or completed transaction for the
// book may review it.
func (uc *ReviewUseCase) AddBookReview(ctx context.Context, reviewerID, bookID string, input CreateReviewInput) (*entity.Review, error) {
	qualifying := []string{entity.TransactionStatusActive, entity.TransactionStatusCompleted}
	transaction, err := uc.transactionRepo.FindByBookAndBuyer(ctx, bookID, reviewerID, qualifying)
	if err != nil {
		// Only a confirmed miss means the caller is not entitled; a store
		// failure must not masquerade as a refusal.
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Forbidden("You can only review books you have rented or purchased", nil)
		}
		return nil, err
	}

	review := &entity.Review{
		Type:          entity.ReviewTypeBook,
		BookID:        bookID,
		TransactionID: transaction.ID,
		ReviewerID:    reviewerID,
		Rating:        input.Rating,
		Comment:       input.Comment,
		Images:        input.Images,
		CreatedAt:     time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.recomputeBookRating(ctx, bookID, review); err != nil {
		return nil, err
	}

	return review, nil
}

// recomputeBookRating re-scans every review record for the book and writes
// the arithmetic mean and count back, together with an embedded copy of
// the new review. Two concurrent recomputes can each read a set missing
// the other's review; there is no per-book serialization point.
func (uc *ReviewUseCase) recomputeBookRating(ctx context.Context, bookID string, added *entity.Review) error {
	book, err := uc.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}

	reviews, err := uc.reviewRepo.ListByBook(ctx, bookID)
	if err != nil {
		return err
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	if len(reviews) > 0 {
		book.AverageRating = float64(sum) / float64(len(reviews))
	}
	book.TotalReviews = len(reviews)

	book.Reviews = append(book.Reviews, entity.BookReview{
		ID:         uuid.New().String(),
		ReviewerID: added.ReviewerID,
		Rating:     added.Rating,
		Comment:    added.Comment,
		Date:       added.CreatedAt,
	})

	return uc.bookRepo.Update(ctx, book)
}
