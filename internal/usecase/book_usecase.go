package usecase

import (
	"context"
	"time"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
)

type BookUseCase struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
}

func NewBookUseCase(bookRepo repository.BookRepository, userRepo repository.UserRepository) *BookUseCase {
	return &BookUseCase{
		bookRepo: bookRepo,
		userRepo: userRepo,
	}
}

// OwnerSummary is the reduced owner projection used in listings.
type OwnerSummary struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Rating    float64 `json:"rating"`
}

// OwnerContact is the extended owner projection used on the detail view.
type OwnerContact struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Rating    float64 `json:"rating"`
}

type ReviewerName struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// BookSummary replaces the stored owner reference with its projection.
type BookSummary struct {
	*entity.Book
	Owner *OwnerSummary `json:"owner"`
}

type ReviewView struct {
	entity.BookReview
	Reviewer *ReviewerName `json:"reviewer"`
}

type BookDetail struct {
	*entity.Book
	Owner   *OwnerContact `json:"owner"`
	Reviews []ReviewView  `json:"reviews"`
}

type ListBooksInput struct {
	Category    string
	Language    string
	Condition   string
	ListingType string
	MinPrice    float64
	MaxPrice    float64
	Search      string
	Sort        string
	Page        int
	Limit       int
}

func (uc *BookUseCase) ListBooks(ctx context.Context, input ListBooksInput) ([]*BookSummary, int64, error) {
	offset := (input.Page - 1) * input.Limit
	if offset < 0 {
		offset = 0
	}

	books, total, err := uc.bookRepo.List(ctx, repository.BookQuery{
		Category:    input.Category,
		Language:    input.Language,
		Condition:   input.Condition,
		ListingType: input.ListingType,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		Search:      input.Search,
		Sort:        input.Sort,
		Limit:       input.Limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, 0, err
	}

	owners := make(map[string]*OwnerSummary)
	summaries := make([]*BookSummary, 0, len(books))
	for _, book := range books {
		owner, seen := owners[book.OwnerID]
		if !seen {
			if u, err := uc.userRepo.GetByID(ctx, book.OwnerID); err == nil {
				owner = &OwnerSummary{
					ID:        u.ID,
					FirstName: u.FirstName,
					LastName:  u.LastName,
					Rating:    u.Rating,
				}
			}
			owners[book.OwnerID] = owner
		}
		summaries = append(summaries, &BookSummary{Book: book, Owner: owner})
	}

	return summaries, total, nil
}

func (uc *BookUseCase) GetBook(ctx context.Context, id string) (*BookDetail, error) {
	book, err := uc.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The view counter is bumped atomically and persisted before the
	// response is shaped.
	if err := uc.bookRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	book.Views++

	detail := &BookDetail{Book: book}

	if owner, err := uc.userRepo.GetByID(ctx, book.OwnerID); err == nil {
		detail.Owner = &OwnerContact{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Email:     owner.Email,
			Phone:     owner.Phone,
			Rating:    owner.Rating,
		}
	}

	reviewers := make(map[string]*ReviewerName)
	detail.Reviews = make([]ReviewView, 0, len(book.Reviews))
	for _, review := range book.Reviews {
		reviewer, seen := reviewers[review.ReviewerID]
		if !seen {
			if u, err := uc.userRepo.GetByID(ctx, review.ReviewerID); err == nil {
				reviewer = &ReviewerName{
					ID:        u.ID,
					FirstName: u.FirstName,
					LastName:  u.LastName,
				}
			}
			reviewers[review.ReviewerID] = reviewer
		}
		detail.Reviews = append(detail.Reviews, ReviewView{BookReview: review, Reviewer: reviewer})
	}

	return detail, nil
}

type CreateBookInput struct {
	Title           string
	Author          string
	ISBN            string
	Category        string
	Language        string
	Publisher       string
	PublishYear     int
	Edition         string
	Pages           int
	MRP             float64
	SellingPrice    float64
	ListingType     string
	Condition       string
	ConditionNotes  string
	Description     string
	Highlights      string
	Images          entity.BookImages
	Location        entity.BookLocation
	DeliveryOptions string
	AvailableFrom   time.Time
	MinimumDuration int
}

// CreateBook persists a listing owned by the caller. The owner is always
// the authenticated user; the request cannot name a different one.
func (uc *BookUseCase) CreateBook(ctx context.Context, ownerID string, input CreateBookInput) (*entity.Book, error) {
	now := time.Now()
	book := &entity.Book{
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		Category:        input.Category,
		Language:        input.Language,
		Publisher:       input.Publisher,
		PublishYear:     input.PublishYear,
		Edition:         input.Edition,
		Pages:           input.Pages,
		MRP:             input.MRP,
		SellingPrice:    input.SellingPrice,
		ListingType:     input.ListingType,
		Condition:       input.Condition,
		ConditionNotes:  input.ConditionNotes,
		Description:     input.Description,
		Highlights:      input.Highlights,
		Images:          input.Images,
		OwnerID:         ownerID,
		Location:        input.Location,
		DeliveryOptions: input.DeliveryOptions,
		Availability: entity.Availability{
			IsAvailable:     true,
			AvailableFrom:   input.AvailableFrom,
			MinimumDuration: input.MinimumDuration,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}
