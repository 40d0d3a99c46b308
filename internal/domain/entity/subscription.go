package entity

import (
	"time"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusCancelled = "cancelled"
)

type SubscriptionBenefits struct {
	DiscountPercentage int  `json:"discountPercentage" firestore:"discountPercentage"`
	FreeDelivery       bool `json:"freeDelivery" firestore:"freeDelivery"`
	FreeRentals        int  `json:"freeRentals" firestore:"freeRentals"`
	NoAdvancePayment   bool `json:"noAdvancePayment" firestore:"noAdvancePayment"`
}

type Subscription struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user" firestore:"user"`
	Plan   string `json:"plan" firestore:"plan"` // monthly, quarterly, annual

	Amount    float64   `json:"amount" firestore:"amount"`
	StartDate time.Time `json:"startDate" firestore:"startDate"`
	EndDate   time.Time `json:"endDate" firestore:"endDate"`
	Status    string    `json:"status" firestore:"status"`

	Benefits       SubscriptionBenefits `json:"benefits" firestore:"benefits"`
	PaymentDetails PaymentDetails       `json:"paymentDetails" firestore:"paymentDetails"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
