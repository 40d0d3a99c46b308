package usecase

import (
	"context"
	"time"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/pkg/errors"
)

type SubscriptionUseCase struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
}

func NewSubscriptionUseCase(
	subscriptionRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// Subscribe creates a subscription and then flips the user's premium flag.
// The two writes are ordered so that the flag is only ever set after the
// subscription exists; the store offers no transaction across them, so a
// failure in between leaves a subscription without the flag.
func (uc *SubscriptionUseCase) Subscribe(ctx context.Context, userID, plan string) (*entity.Subscription, error) {
	details, ok := PremiumPlan(plan)
	if !ok {
		return nil, errors.BadRequest("Invalid plan", nil)
	}

	now := time.Now()
	subscription := &entity.Subscription{
		UserID:    userID,
		Plan:      plan,
		Amount:    details.Amount,
		StartDate: now,
		EndDate:   now.Add(time.Duration(details.Months) * RentalMonth),
		Status:    entity.SubscriptionStatusActive,
		Benefits:  details.Benefits,
	}

	if err := uc.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, err
	}

	err := uc.userRepo.UpdateFields(ctx, userID, map[string]interface{}{
		"isPremium": true,
		"premiumPlan": &entity.PremiumPlan{
			Type:      plan,
			StartDate: subscription.StartDate,
			EndDate:   subscription.EndDate,
		},
	})
	if err != nil {
		return nil, errors.Internal("Failed to activate premium subscription", err)
	}

	return subscription, nil
}

// ListSubscriptions returns the caller's full subscription history,
// expired and cancelled records included.
func (uc *SubscriptionUseCase) ListSubscriptions(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	return uc.subscriptionRepo.ListByUser(ctx, userID)
}
