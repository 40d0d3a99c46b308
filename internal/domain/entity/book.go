package entity

import (
	"time"
)

type BookImages struct {
	FrontCover string   `json:"frontCover,omitempty" firestore:"frontCover,omitempty"`
	BackCover  string   `json:"backCover,omitempty" firestore:"backCover,omitempty"`
	FirstPage  string   `json:"firstPage,omitempty" firestore:"firstPage,omitempty"`
	Additional []string `json:"additional,omitempty" firestore:"additional,omitempty"`
}

type BookLocation struct {
	City    string `json:"city,omitempty" firestore:"city,omitempty"`
	Area    string `json:"area,omitempty" firestore:"area,omitempty"`
	Pincode string `json:"pincode,omitempty" firestore:"pincode,omitempty"`
}

type Availability struct {
	IsAvailable     bool      `json:"isAvailable" firestore:"isAvailable"`
	AvailableFrom   time.Time `json:"availableFrom,omitempty" firestore:"availableFrom,omitempty"`
	MinimumDuration int       `json:"minimumDuration,omitempty" firestore:"minimumDuration,omitempty"` // in months
}

// BookRental is a rental sub-record embedded in a book document.
type BookRental struct {
	ID        string    `json:"id" firestore:"id"`
	RenterID  string    `json:"renter" firestore:"renter"`
	StartDate time.Time `json:"startDate" firestore:"startDate"`
	EndDate   time.Time `json:"endDate" firestore:"endDate"`
	Status    string    `json:"status" firestore:"status"` // active, completed, cancelled
}

// BookReview is a review sub-record embedded in a book document; the
// authoritative records live in the reviews collection.
type BookReview struct {
	ID         string    `json:"id" firestore:"id"`
	ReviewerID string    `json:"reviewer" firestore:"reviewer"`
	Rating     int       `json:"rating" firestore:"rating"` // 1-5
	Comment    string    `json:"comment" firestore:"comment"`
	Date       time.Time `json:"date" firestore:"date"`
}

type Book struct {
	ID          string `json:"id" firestore:"id"`
	Title       string `json:"title" firestore:"title"`
	Author      string `json:"author" firestore:"author"`
	ISBN        string `json:"isbn,omitempty" firestore:"isbn,omitempty"`
	Category    string `json:"category" firestore:"category"`
	Language    string `json:"language" firestore:"language"`
	Publisher   string `json:"publisher" firestore:"publisher"`
	PublishYear int    `json:"publishYear" firestore:"publishYear"`
	Edition     string `json:"edition,omitempty" firestore:"edition,omitempty"`
	Pages       int    `json:"pages,omitempty" firestore:"pages,omitempty"`

	MRP          float64 `json:"mrp" firestore:"mrp"`
	SellingPrice float64 `json:"sellingPrice" firestore:"sellingPrice"`
	ListingType  string  `json:"listingType" firestore:"listingType"` // rent, sell

	Condition      string `json:"condition" firestore:"condition"` // new, excellent, good, fair
	ConditionNotes string `json:"conditionNotes,omitempty" firestore:"conditionNotes,omitempty"`
	Description    string `json:"description" firestore:"description"`
	Highlights     string `json:"highlights,omitempty" firestore:"highlights,omitempty"`

	Images BookImages `json:"images" firestore:"images"`

	// OwnerID is set at creation and immutable afterwards.
	OwnerID string `json:"owner" firestore:"owner"`

	Location        BookLocation `json:"location" firestore:"location"`
	DeliveryOptions string       `json:"deliveryOptions,omitempty" firestore:"deliveryOptions,omitempty"` // pickup, delivery, both
	Availability    Availability `json:"availability" firestore:"availability"`

	Rentals []BookRental `json:"rentals,omitempty" firestore:"rentals,omitempty"`
	Reviews []BookReview `json:"reviews,omitempty" firestore:"reviews,omitempty"`

	// AverageRating is the arithmetic mean over all review records for this
	// book; TotalReviews is their count. Both are recomputed on every
	// review write.
	AverageRating float64 `json:"averageRating" firestore:"averageRating"`
	TotalReviews  int     `json:"totalReviews" firestore:"totalReviews"`

	Views     int       `json:"views" firestore:"views"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
