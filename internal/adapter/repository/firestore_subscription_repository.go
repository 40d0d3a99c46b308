package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/pkg/errors"
)

type firestoreSubscriptionRepository struct {
	client *firestore.Client
}

func NewFirestoreSubscriptionRepository(client *firestore.Client) repository.SubscriptionRepository {
	return &firestoreSubscriptionRepository{
		client: client,
	}
}

func (r *firestoreSubscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	if subscription.ID == "" {
		doc := r.client.Collection("subscriptions").NewDoc()
		subscription.ID = doc.ID
	}

	if subscription.CreatedAt.IsZero() {
		subscription.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("subscriptions").Doc(subscription.ID).Set(ctx, subscription)
	if err != nil {
		return errors.Internal("Failed to create subscription", err)
	}

	return nil
}

func (r *firestoreSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	iter := r.client.Collection("subscriptions").Where("user", "==", userID).Documents(ctx)

	var subscriptions []*entity.Subscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate subscriptions", err)
		}

		var subscription entity.Subscription
		if err := doc.DataTo(&subscription); err != nil {
			return nil, errors.Internal("Failed to parse subscription data", err)
		}
		subscriptions = append(subscriptions, &subscription)
	}

	return subscriptions, nil
}
