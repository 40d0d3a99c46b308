package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/pkg/errors"
)

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.ID == "" {
		doc := r.client.Collection("transactions").NewDoc()
		transaction.ID = doc.ID
	}

	now := time.Now()
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = now
	}
	transaction.UpdatedAt = now

	_, err := r.client.Collection("transactions").Doc(transaction.ID).Set(ctx, transaction)
	if err != nil {
		return errors.Internal("Failed to create transaction", err)
	}

	return nil
}

func (r *firestoreTransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	doc, err := r.client.Collection("transactions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Transaction", err)
		}
		return nil, errors.Internal("Failed to get transaction", err)
	}

	var transaction entity.Transaction
	if err := doc.DataTo(&transaction); err != nil {
		return nil, errors.Internal("Failed to parse transaction data", err)
	}

	return &transaction, nil
}

func (r *firestoreTransactionRepository) FindByBookAndBuyer(ctx context.Context, bookID, buyerID string, statuses []string) (*entity.Transaction, error) {
	query := r.client.Collection("transactions").
		Where("book", "==", bookID).
		Where("buyer", "==", buyerID)

	if len(statuses) > 0 {
		query = query.Where("status", "in", statuses)
	}

	iter := query.Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Transaction", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query transactions", err)
	}

	var transaction entity.Transaction
	if err := doc.DataTo(&transaction); err != nil {
		return nil, errors.Internal("Failed to parse transaction data", err)
	}

	return &transaction, nil
}

func (r *firestoreTransactionRepository) CountByBuyer(ctx context.Context, buyerID, transactionType string) (int64, error) {
	query := r.client.Collection("transactions").Where("buyer", "==", buyerID)
	if transactionType != "" {
		query = query.Where("transactionType", "==", transactionType)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count transactions", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreTransactionRepository) SumAmountBySeller(ctx context.Context, sellerID, status string) (float64, error) {
	query := r.client.Collection("transactions").Where("seller", "==", sellerID)
	if status != "" {
		query = query.Where("status", "==", status)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to sum transactions", err)
	}

	var total float64
	for _, doc := range docs {
		var transaction entity.Transaction
		if err := doc.DataTo(&transaction); err != nil {
			continue
		}
		total += transaction.Amount
	}

	return total, nil
}
