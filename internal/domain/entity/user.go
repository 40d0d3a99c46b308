package entity

import (
	"time"
)

// PremiumPlan is the plan summary denormalized onto the user when a
// subscription is created. The subscription write path keeps it consistent.
type PremiumPlan struct {
	Type      string    `json:"type" firestore:"type"` // monthly, quarterly, annual
	StartDate time.Time `json:"startDate" firestore:"startDate"`
	EndDate   time.Time `json:"endDate" firestore:"endDate"`
}

type User struct {
	ID        string `json:"id" firestore:"id"`
	FirstName string `json:"firstName" firestore:"firstName"`
	LastName  string `json:"lastName" firestore:"lastName"`
	Email     string `json:"email" firestore:"email"`
	// Password holds the bcrypt digest. It is never serialized in responses.
	Password  string   `json:"-" firestore:"password"`
	Phone     string   `json:"phone" firestore:"phone"`
	Address   string   `json:"address" firestore:"address"`
	City      string   `json:"city" firestore:"city"`
	Pincode   string   `json:"pincode" firestore:"pincode"`
	College   string   `json:"college,omitempty" firestore:"college,omitempty"`
	Interests []string `json:"interests,omitempty" firestore:"interests,omitempty"`

	IsPremium   bool         `json:"isPremium" firestore:"isPremium"`
	PremiumPlan *PremiumPlan `json:"premiumPlan,omitempty" firestore:"premiumPlan,omitempty"`

	WalletBalance float64 `json:"walletBalance" firestore:"walletBalance"`
	Rating        float64 `json:"rating" firestore:"rating"`
	TotalRatings  int     `json:"totalRatings" firestore:"totalRatings"`
	IsVerified    bool    `json:"isVerified" firestore:"isVerified"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
