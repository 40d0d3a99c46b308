package entity

import (
	"time"
)

const (
	TransactionTypeRent     = "rent"
	TransactionTypePurchase = "purchase"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusPaid      = "paid"
	TransactionStatusActive    = "active"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
	TransactionStatusRefunded  = "refunded"
)

type PaymentDetails struct {
	Method        string     `json:"method,omitempty" firestore:"method,omitempty"`
	TransactionID string     `json:"transactionId,omitempty" firestore:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty" firestore:"paidAt,omitempty"`
}

type RentalPeriod struct {
	StartDate  time.Time  `json:"startDate" firestore:"startDate"`
	EndDate    time.Time  `json:"endDate" firestore:"endDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty" firestore:"returnDate,omitempty"`
	Condition  string     `json:"condition,omitempty" firestore:"condition,omitempty"`
}

type Transaction struct {
	ID       string `json:"id" firestore:"id"`
	BookID   string `json:"book" firestore:"book"`
	SellerID string `json:"seller" firestore:"seller"`
	BuyerID  string `json:"buyer" firestore:"buyer"`

	Type string `json:"transactionType" firestore:"transactionType"` // rent, purchase

	Amount         float64 `json:"amount" firestore:"amount"`
	AdvanceAmount  float64 `json:"advanceAmount" firestore:"advanceAmount"`   // 40% of MRP, waived for premium
	MonthlyRental  float64 `json:"monthlyRental" firestore:"monthlyRental"`   // 15% of MRP
	RentalDuration int     `json:"rentalDuration" firestore:"rentalDuration"` // in months

	Status string `json:"status" firestore:"status"`

	PaymentDetails PaymentDetails `json:"paymentDetails" firestore:"paymentDetails"`
	Rental         RentalPeriod   `json:"rental" firestore:"rental"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
