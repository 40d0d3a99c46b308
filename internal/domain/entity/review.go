package entity

import (
	"time"
)

// ReviewType is a closed discriminant over the three review targets. Any
// code interpreting a review must switch over these exhaustively.
type ReviewType string

const (
	ReviewTypeBook        ReviewType = "book"
	ReviewTypeUser        ReviewType = "user"
	ReviewTypeTransaction ReviewType = "transaction"
)

func (t ReviewType) Valid() bool {
	switch t {
	case ReviewTypeBook, ReviewTypeUser, ReviewTypeTransaction:
		return true
	}
	return false
}

type Review struct {
	ID string `json:"id" firestore:"id"`

	Type ReviewType `json:"type" firestore:"type"`

	// Target references, one set per type: book reviews carry BookID and
	// TransactionID, user reviews carry RevieweeID, transaction reviews
	// carry TransactionID.
	BookID        string `json:"book,omitempty" firestore:"book,omitempty"`
	TransactionID string `json:"transaction,omitempty" firestore:"transaction,omitempty"`
	RevieweeID    string `json:"reviewee,omitempty" firestore:"reviewee,omitempty"`

	ReviewerID string   `json:"reviewer" firestore:"reviewer"`
	Rating     int      `json:"rating" firestore:"rating"` // 1-5
	Comment    string   `json:"comment" firestore:"comment"`
	Images     []string `json:"images,omitempty" firestore:"images,omitempty"`
	Helpful    int      `json:"helpful" firestore:"helpful"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
