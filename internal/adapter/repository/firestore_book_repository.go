package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/pkg/errors"
)

type firestoreBookRepository struct {
	client *firestore.Client
}

func NewFirestoreBookRepository(client *firestore.Client) repository.BookRepository {
	return &firestoreBookRepository{
		client: client,
	}
}

func (r *firestoreBookRepository) Create(ctx context.Context, book *entity.Book) error {
	if book.ID == "" {
		doc := r.client.Collection("books").NewDoc()
		book.ID = doc.ID
	}

	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = now

	_, err := r.client.Collection("books").Doc(book.ID).Set(ctx, book)
	if err != nil {
		return errors.Internal("Failed to create book listing", err)
	}

	return nil
}

func (r *firestoreBookRepository) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	doc, err := r.client.Collection("books").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Book", err)
		}
		return nil, errors.Internal("Failed to get book", err)
	}

	var book entity.Book
	if err := doc.DataTo(&book); err != nil {
		return nil, errors.Internal("Failed to parse book data", err)
	}

	return &book, nil
}

func (r *firestoreBookRepository) List(ctx context.Context, q repository.BookQuery) ([]*entity.Book, int64, error) {
	query := r.client.Collection("books").Query

	// Equality filters run server-side; price bounds, search, sorting and
	// pagination are applied in memory (see book_filter.go).
	if q.Category != "" {
		query = query.Where("category", "==", q.Category)
	}
	if q.Language != "" {
		query = query.Where("language", "==", q.Language)
	}
	if q.Condition != "" {
		query = query.Where("condition", "==", q.Condition)
	}
	if q.ListingType != "" {
		query = query.Where("listingType", "==", q.ListingType)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch books", err)
	}

	var books []*entity.Book
	for _, doc := range docs {
		var book entity.Book
		if err := doc.DataTo(&book); err != nil {
			return nil, 0, errors.Internal("Failed to parse book data", err)
		}
		if matchesQuery(&book, q) {
			books = append(books, &book)
		}
	}

	total := int64(len(books))

	sortBooks(books, q.Sort)

	return paginateBooks(books, q.Limit, q.Offset), total, nil
}

func (r *firestoreBookRepository) Update(ctx context.Context, book *entity.Book) error {
	book.UpdatedAt = time.Now()

	_, err := r.client.Collection("books").Doc(book.ID).Set(ctx, book)
	if err != nil {
		return errors.Internal("Failed to update book", err)
	}

	return nil
}

func (r *firestoreBookRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("books").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Book", err)
		}
		return errors.Internal("Failed to increment book views", err)
	}

	return nil
}

func (r *firestoreBookRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	docs, err := r.client.Collection("books").Where("owner", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count books", err)
	}
	return int64(len(docs)), nil
}
