package payment

import (
	"github.com/chris/travel-payments/pkg/models"
	"github.com/shopspring/decimal"
)

// validate runs the checks that need both the store and the merchant, in the
// order their errors take precedence. Existence is checked by the caller.
func validate(store models.SpendableStore, merchant *models.Merchant, amount decimal.Decimal) error {
	if store.CurrencyCode() != merchant.Currency {
		return ErrCurrencyMismatch
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if store.AvailableBalance().LessThan(amount) {
		return ErrInsufficientBalance
	}
	return nil
}
