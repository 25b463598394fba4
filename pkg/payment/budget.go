package payment

import (
	"github.com/chris/travel-payments/pkg/models"
	"github.com/shopspring/decimal"
)

// applySpend adds amount to the budget usage and flips every threshold the new
// usage reaches for the first time, returning them in the order they flipped.
//
// Both thresholds are evaluated in the same pass: one payment that takes the
// budget from below 50% to 80% or more crosses FIFTY and then EIGHTY.
func applySpend(b *models.Budget, amount decimal.Decimal) []models.ThresholdKind {
	b.UsedAmount = models.NewDecimal(b.UsedAmount.Add(amount))

	var crossed []models.ThresholdKind
	if !b.CrossedFifty && b.UsedAmount.GreaterThanOrEqual(b.FiftyThreshold.Decimal) {
		b.CrossedFifty = true
		crossed = append(crossed, models.ThresholdFifty)
	}
	if b.CrossedFifty && !b.CrossedEighty && b.UsedAmount.GreaterThanOrEqual(b.EightyThreshold.Decimal) {
		b.CrossedEighty = true
		crossed = append(crossed, models.ThresholdEighty)
	}
	return crossed
}
