package memory

import (
	"context"
	"fmt"

	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage"
)

// tx stages writes until Commit. It holds the store semaphore for its whole
// lifetime, so reads made through it cannot go stale.
type tx struct {
	store  *Store
	closed bool

	accounts   map[string]models.Account
	wallets    map[string]models.TravelWallet
	budgets    map[budgetKey]models.Budget
	accountTxs []models.AccountTransaction
	travelTxs  []models.TravelTransaction
}

var _ storage.Tx = (*tx)(nil)

func (t *tx) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	return t.store.GetMerchant(ctx, merchantID)
}

func (t *tx) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if a, ok := t.accounts[accountID]; ok {
		return &a, nil
	}
	return t.store.GetAccount(ctx, accountID)
}

func (t *tx) GetTravelWallet(ctx context.Context, walletID string) (*models.TravelWallet, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if w, ok := t.wallets[walletID]; ok {
		return &w, nil
	}
	return t.store.GetTravelWallet(ctx, walletID)
}

func (t *tx) FindBudgetByCategoryAndTravel(ctx context.Context, travelID, categoryID string) (*models.Budget, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if b, ok := t.budgets[budgetKey{travelID, categoryID}]; ok {
		return &b, nil
	}
	return t.store.FindBudgetByCategoryAndTravel(ctx, travelID, categoryID)
}

func (t *tx) SaveAccount(ctx context.Context, account *models.Account) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	if account.Balance.IsNegative() {
		return fmt.Errorf("account %s: negative balance: %w", account.AccountID, storage.ErrConflict)
	}
	t.accounts[account.AccountID] = *account
	return nil
}

func (t *tx) SaveTravelWallet(ctx context.Context, wallet *models.TravelWallet) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	if wallet.Balance.IsNegative() {
		return fmt.Errorf("travel wallet %s: negative balance: %w", wallet.WalletID, storage.ErrConflict)
	}
	t.wallets[wallet.WalletID] = *wallet
	return nil
}

func (t *tx) SaveBudget(ctx context.Context, budget *models.Budget) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	t.budgets[budgetKey{budget.TravelID, budget.CategoryID}] = *budget
	return nil
}

func (t *tx) AppendAccountTransaction(ctx context.Context, entry *models.AccountTransaction) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	if entry.EntryID == "" {
		return fmt.Errorf("entry ID is required")
	}
	t.accountTxs = append(t.accountTxs, *entry)
	return nil
}

func (t *tx) AppendTravelTransaction(ctx context.Context, entry *models.TravelTransaction) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	if entry.EntryID == "" {
		return fmt.Errorf("entry ID is required")
	}
	t.travelTxs = append(t.travelTxs, *entry)
	return nil
}

// Commit checks versions against the committed state, then applies every
// staged write. Versions are bumped the same way the DynamoDB store does.
func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	defer t.release()

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range t.accounts {
		if current, ok := s.accounts[id]; !ok || current.Version != a.Version {
			return fmt.Errorf("account %s: %w", id, storage.ErrConflict)
		}
	}
	for id, w := range t.wallets {
		if current, ok := s.wallets[id]; !ok || current.Version != w.Version {
			return fmt.Errorf("travel wallet %s: %w", id, storage.ErrConflict)
		}
	}
	for key, b := range t.budgets {
		current, ok := s.budgets[key]
		if !ok || current.Version != b.Version || b.UsedAmount.LessThan(current.UsedAmount.Decimal) {
			return fmt.Errorf("budget %s: %w", b.BudgetID, storage.ErrConflict)
		}
	}

	for id, a := range t.accounts {
		a.Version++
		s.accounts[id] = a
	}
	for id, w := range t.wallets {
		w.Version++
		s.wallets[id] = w
	}
	for key, b := range t.budgets {
		b.Version++
		s.budgets[key] = b
	}
	for _, e := range t.accountTxs {
		s.accountTxs[e.AccountID] = append(s.accountTxs[e.AccountID], e)
	}
	for _, e := range t.travelTxs {
		s.travelTxs[e.WalletID] = append(s.travelTxs[e.WalletID], e)
	}

	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return nil
	}
	t.release()
	return nil
}

func (t *tx) release() {
	t.closed = true
	<-t.store.sem
}
