package mapping

import (
	"fmt"
	"time"

	"github.com/chris/travel-payments/pkg/api"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/payment"
	"github.com/shopspring/decimal"
)

// ToDomainPaymentRequest converts an API PaymentRequest to an engine request.
// Only the amount format is checked here; everything else is left to the engine.
func ToDomainPaymentRequest(req *api.PaymentRequest) (payment.Request, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return payment.Request{}, fmt.Errorf("invalid amount %q: %w", req.Amount, err)
	}

	return payment.Request{
		StoreKind:  payment.StoreKind(req.StoreKind),
		StoreID:    req.StoreId,
		MerchantID: req.MerchantId,
		Amount:     amount,
	}, nil
}

// ToApiPaymentResult converts an engine result to an API PaymentResult.
func ToApiPaymentResult(result *payment.Result) *api.PaymentResult {
	return &api.PaymentResult{
		Amount:       result.Amount.String(),
		Currency:     result.Currency,
		MerchantId:   result.MerchantID,
		MerchantName: result.MerchantName,
	}
}

// ToApiMerchant converts a domain Merchant model to an API Merchant model.
func ToApiMerchant(merchant *models.Merchant) *api.Merchant {
	return &api.Merchant{
		AccountNumber: merchant.AccountNumber,
		CategoryId:    merchant.CategoryID,
		Currency:      merchant.Currency,
		MerchantId:    merchant.MerchantID,
		Name:          merchant.Name,
	}
}

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		AccountId:     account.AccountID,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance.String(),
		CreatedAt:     optionalTime(account.CreatedAt),
		Currency:      account.Currency,
		Version:       account.Version,
	}
}

// ToApiTravelWallet converts a domain TravelWallet model to an API TravelWallet model.
func ToApiTravelWallet(wallet *models.TravelWallet) *api.TravelWallet {
	return &api.TravelWallet{
		Balance:   wallet.Balance.String(),
		CreatedAt: optionalTime(wallet.CreatedAt),
		Currency:  wallet.Currency,
		TravelId:  wallet.TravelID,
		Version:   wallet.Version,
		WalletId:  wallet.WalletID,
	}
}

func ToApiAccountTransaction(entry *models.AccountTransaction) *api.AccountTransaction {
	tx := &api.AccountTransaction{
		AccountId:    entry.AccountID,
		Amount:       entry.Amount.String(),
		BalanceAfter: entry.BalanceAfter.String(),
		EntryId:      entry.EntryID,
		Name:         entry.Name,
		Timestamp:    entry.Timestamp,
		Type:         entry.Type,
		TypeName:     entry.TypeName,
	}
	if entry.CounterpartyAccountNumber != "" {
		counterparty := entry.CounterpartyAccountNumber
		tx.CounterpartyAccountNumber = &counterparty
	}
	return tx
}

func ToApiTravelTransaction(entry *models.TravelTransaction) *api.TravelTransaction {
	return &api.TravelTransaction{
		Amount:       entry.Amount.String(),
		BalanceAfter: entry.BalanceAfter.String(),
		CategoryId:   entry.CategoryID,
		EntryId:      entry.EntryID,
		Name:         entry.Name,
		Timestamp:    entry.Timestamp,
		TravelId:     entry.TravelID,
		WalletId:     entry.WalletID,
	}
}

// ToApiBudget converts a domain Budget model to an API Budget model.
func ToApiBudget(budget *models.Budget) *api.Budget {
	return &api.Budget{
		Amount:          budget.Amount.String(),
		BudgetId:        budget.BudgetID,
		CategoryId:      budget.CategoryID,
		CrossedEighty:   budget.CrossedEighty,
		CrossedFifty:    budget.CrossedFifty,
		EightyThreshold: budget.EightyThreshold.String(),
		FiftyThreshold:  budget.FiftyThreshold.String(),
		State:           api.BudgetState(budget.State().String()),
		TravelId:        budget.TravelID,
		UsedAmount:      budget.UsedAmount.String(),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
