package repository

import (
	"context"

	"vidyashare/internal/domain/entity"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Subscription, error)
}
