package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// settlement holds what differs between store kinds: how the store is loaded
// and what is written once it has been debited.
type settlement interface {
	load(ctx context.Context, tx storage.Tx, storeID string) (models.SpendableStore, error)

	// record persists the debited store and its ledger entry, plus any
	// kind-specific bookkeeping. It returns the budget thresholds crossed.
	record(ctx context.Context, tx storage.Tx, store models.SpendableStore, merchant *models.Merchant, amount decimal.Decimal, at time.Time) ([]models.ThresholdCrossing, error)
}

type commonSettlement struct{}

func (commonSettlement) load(ctx context.Context, tx storage.Tx, storeID string) (models.SpendableStore, error) {
	account, err := tx.GetAccount(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (commonSettlement) record(ctx context.Context, tx storage.Tx, store models.SpendableStore, merchant *models.Merchant, amount decimal.Decimal, at time.Time) ([]models.ThresholdCrossing, error) {
	account, ok := store.(*models.Account)
	if !ok {
		return nil, fmt.Errorf("common settlement cannot record a %T", store)
	}

	if err := tx.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	entryID, err := newEntryID()
	if err != nil {
		return nil, err
	}
	entry := &models.AccountTransaction{
		EntryID:                   entryID,
		AccountID:                 account.AccountID,
		Type:                      models.AccountTransactionTypeWithdrawal,
		TypeName:                  models.AccountTransactionTypeNameWithdrawal,
		Name:                      merchant.Name,
		CounterpartyAccountNumber: merchant.AccountNumber,
		Amount:                    models.NewDecimal(amount),
		BalanceAfter:              account.Balance,
		Timestamp:                 at,
	}
	if err := tx.AppendAccountTransaction(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append account transaction: %w", err)
	}

	return nil, nil
}

type travelSettlement struct{}

func (travelSettlement) load(ctx context.Context, tx storage.Tx, storeID string) (models.SpendableStore, error) {
	wallet, err := tx.GetTravelWallet(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

func (travelSettlement) record(ctx context.Context, tx storage.Tx, store models.SpendableStore, merchant *models.Merchant, amount decimal.Decimal, at time.Time) ([]models.ThresholdCrossing, error) {
	wallet, ok := store.(*models.TravelWallet)
	if !ok {
		return nil, fmt.Errorf("travel settlement cannot record a %T", store)
	}

	if err := tx.SaveTravelWallet(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to save travel wallet: %w", err)
	}

	entryID, err := newEntryID()
	if err != nil {
		return nil, err
	}
	entry := &models.TravelTransaction{
		EntryID:      entryID,
		WalletID:     wallet.WalletID,
		TravelID:     wallet.TravelID,
		CategoryID:   merchant.CategoryID,
		Name:         merchant.Name,
		Amount:       models.NewDecimal(amount),
		BalanceAfter: wallet.Balance,
		Timestamp:    at,
	}
	if err := tx.AppendTravelTransaction(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append travel transaction: %w", err)
	}

	budget, err := tx.FindBudgetByCategoryAndTravel(ctx, wallet.TravelID, merchant.CategoryID)
	if err != nil {
		return nil, lookupError(err, ErrBudgetNotFound, "travel budget")
	}

	kinds := applySpend(budget, amount)
	if err := tx.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to save travel budget: %w", err)
	}

	crossings := make([]models.ThresholdCrossing, 0, len(kinds))
	for _, kind := range kinds {
		crossings = append(crossings, models.ThresholdCrossing{
			BudgetID:   budget.BudgetID,
			TravelID:   budget.TravelID,
			CategoryID: budget.CategoryID,
			Kind:       kind,
			UsedAmount: budget.UsedAmount,
			Amount:     budget.Amount,
			OccurredAt: at,
		})
	}
	return crossings, nil
}

// newEntryID returns a time-ordered identifier so ledger keys sort by creation.
func newEntryID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ledger entry ID: %w", err)
	}
	return id.String(), nil
}
