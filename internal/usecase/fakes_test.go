package usecase

import (
	"context"
	"fmt"
	"sort"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/pkg/errors"
)

// In-memory repository fakes. Reads hand back copies so that callers
// mutating a result do not reach into the stored record, matching the
// snapshot semantics of the real document store.

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	for key, value := range fields {
		switch key {
		case "isPremium":
			user.IsPremium = value.(bool)
		case "premiumPlan":
			user.PremiumPlan = value.(*entity.PremiumPlan)
		case "firstName":
			user.FirstName = value.(string)
		case "lastName":
			user.LastName = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "city":
			user.City = value.(string)
		}
	}
	return nil
}

type fakeBookRepo struct {
	books  map[string]*entity.Book
	nextID int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[string]*entity.Book)}
}

func (r *fakeBookRepo) Create(ctx context.Context, book *entity.Book) error {
	r.nextID++
	book.ID = fmt.Sprintf("book-%d", r.nextID)
	stored := *book
	r.books[book.ID] = &stored
	return nil
}

func (r *fakeBookRepo) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, errors.NotFound("Book", nil)
	}
	copied := *book
	return &copied, nil
}

// List honors the equality, price and sort parts of the query the way the
// real store adapter does, so listing behavior can be asserted end to end.
func (r *fakeBookRepo) List(ctx context.Context, query repository.BookQuery) ([]*entity.Book, int64, error) {
	books := make([]*entity.Book, 0, len(r.books))
	for _, book := range r.books {
		if query.Category != "" && book.Category != query.Category {
			continue
		}
		if query.Language != "" && book.Language != query.Language {
			continue
		}
		if query.Condition != "" && book.Condition != query.Condition {
			continue
		}
		if query.ListingType != "" && book.ListingType != query.ListingType {
			continue
		}
		if query.MinPrice > 0 && book.SellingPrice < query.MinPrice {
			continue
		}
		if query.MaxPrice > 0 && book.SellingPrice > query.MaxPrice {
			continue
		}
		copied := *book
		books = append(books, &copied)
	}

	switch query.Sort {
	case "price_low":
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].SellingPrice < books[j].SellingPrice
		})
	case "price_high":
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].SellingPrice > books[j].SellingPrice
		})
	}

	total := int64(len(books))

	if query.Offset >= len(books) {
		return []*entity.Book{}, total, nil
	}
	end := len(books)
	if query.Limit > 0 && query.Offset+query.Limit < end {
		end = query.Offset + query.Limit
	}
	return books[query.Offset:end], total, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, book *entity.Book) error {
	if _, ok := r.books[book.ID]; !ok {
		return errors.NotFound("Book", nil)
	}
	stored := *book
	r.books[book.ID] = &stored
	return nil
}

func (r *fakeBookRepo) IncrementViews(ctx context.Context, id string) error {
	book, ok := r.books[id]
	if !ok {
		return errors.NotFound("Book", nil)
	}
	book.Views++
	return nil
}

func (r *fakeBookRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	for _, book := range r.books {
		if book.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	nextID       int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.nextID++
	transaction.ID = fmt.Sprintf("txn-%d", r.nextID)
	stored := *transaction
	r.transactions = append(r.transactions, &stored)
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.ID == id {
			copied := *transaction
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Transaction", nil)
}

func (r *fakeTransactionRepo) FindByBookAndBuyer(ctx context.Context, bookID, buyerID string, statuses []string) (*entity.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.BookID != bookID || transaction.BuyerID != buyerID {
			continue
		}
		for _, status := range statuses {
			if transaction.Status == status {
				copied := *transaction
				return &copied, nil
			}
		}
	}
	return nil, errors.NotFound("Transaction", nil)
}

func (r *fakeTransactionRepo) CountByBuyer(ctx context.Context, buyerID, transactionType string) (int64, error) {
	var count int64
	for _, transaction := range r.transactions {
		if transaction.BuyerID == buyerID && transaction.Type == transactionType {
			count++
		}
	}
	return count, nil
}

func (r *fakeTransactionRepo) SumAmountBySeller(ctx context.Context, sellerID, status string) (float64, error) {
	var sum float64
	for _, transaction := range r.transactions {
		if transaction.SellerID == sellerID && transaction.Status == status {
			sum += transaction.Amount
		}
	}
	return sum, nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if !review.Type.Valid() {
		return errors.BadRequest("Invalid review type", nil)
	}
	r.nextID++
	review.ID = fmt.Sprintf("review-%d", r.nextID)
	stored := *review
	r.reviews = append(r.reviews, &stored)
	return nil
}

func (r *fakeReviewRepo) ListByBook(ctx context.Context, bookID string) ([]*entity.Review, error) {
	matched := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if review.BookID == bookID && review.Type == entity.ReviewTypeBook {
			copied := *review
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

type fakeSubscriptionRepo struct {
	subscriptions []*entity.Subscription
	nextID        int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{}
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	r.nextID++
	subscription.ID = fmt.Sprintf("sub-%d", r.nextID)
	stored := *subscription
	r.subscriptions = append(r.subscriptions, &stored)
	return nil
}

func (r *fakeSubscriptionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	matched := make([]*entity.Subscription, 0)
	for _, subscription := range r.subscriptions {
		if subscription.UserID == userID {
			copied := *subscription
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}
