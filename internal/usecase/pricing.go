package usecase

import (
	"math"
	"time"

	"vidyashare/internal/domain/entity"
)

// RentalMonth is the fixed 30-day month used for all rental and plan
// windows. End dates are not calendar-aware.
const RentalMonth = 30 * 24 * time.Hour

// MonthlyRental is 15% of the book's MRP, rounded to the nearest unit.
func MonthlyRental(mrp float64) float64 {
	return math.Round(mrp * 0.15)
}

// AdvanceAmount is the upfront deposit: 40% of MRP, rounded to the nearest
// unit. It is waived entirely for premium users.
func AdvanceAmount(mrp float64) float64 {
	return math.Round(mrp * 0.40)
}

type PlanDetails struct {
	Amount   float64
	Months   int
	Benefits entity.SubscriptionBenefits
}

// premiumPlans is the fixed pricing and benefit table. Every tier includes
// free delivery and waived advance payments.
var premiumPlans = map[string]PlanDetails{
	"monthly": {
		Amount: 99,
		Months: 1,
		Benefits: entity.SubscriptionBenefits{
			DiscountPercentage: 10,
			FreeRentals:        0,
			FreeDelivery:       true,
			NoAdvancePayment:   true,
		},
	},
	"quarterly": {
		Amount: 249,
		Months: 3,
		Benefits: entity.SubscriptionBenefits{
			DiscountPercentage: 15,
			FreeRentals:        2,
			FreeDelivery:       true,
			NoAdvancePayment:   true,
		},
	},
	"annual": {
		Amount: 899,
		Months: 12,
		Benefits: entity.SubscriptionBenefits{
			DiscountPercentage: 20,
			FreeRentals:        5,
			FreeDelivery:       true,
			NoAdvancePayment:   true,
		},
	},
}

// PremiumPlan looks up a plan by name; ok is false for unknown plans.
func PremiumPlan(plan string) (PlanDetails, bool) {
	details, ok := premiumPlans[plan]
	return details, ok
}
