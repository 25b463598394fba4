package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage"
)

type budgetKey struct {
	travelID   string
	categoryID string
}

// Store is an in-memory implementation of storage.Storage.
// Units of work are serialized: Begin blocks until the previous one is
// committed or rolled back. Data is lost on restart.
type Store struct {
	// sem is held by the open unit of work, if any.
	sem chan struct{}

	mu         sync.RWMutex
	accounts   map[string]models.Account
	wallets    map[string]models.TravelWallet
	merchants  map[string]models.Merchant
	budgets    map[budgetKey]models.Budget
	accountTxs map[string][]models.AccountTransaction
	travelTxs  map[string][]models.TravelTransaction
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		sem:        make(chan struct{}, 1),
		accounts:   make(map[string]models.Account),
		wallets:    make(map[string]models.TravelWallet),
		merchants:  make(map[string]models.Merchant),
		budgets:    make(map[budgetKey]models.Budget),
		accountTxs: make(map[string][]models.AccountTransaction),
		travelTxs:  make(map[string][]models.TravelTransaction),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// PutAccount seeds or replaces an account outside of any unit of work.
func (s *Store) PutAccount(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.AccountID] = account
}

// PutTravelWallet seeds or replaces a travel wallet outside of any unit of work.
func (s *Store) PutTravelWallet(wallet models.TravelWallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[wallet.WalletID] = wallet
}

// PutMerchant seeds or replaces a merchant.
func (s *Store) PutMerchant(merchant models.Merchant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants[merchant.MerchantID] = merchant
}

// PutBudget seeds or replaces a budget outside of any unit of work.
func (s *Store) PutBudget(budget models.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets[budgetKey{budget.TravelID, budget.CategoryID}] = budget
}

func (s *Store) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.merchant(merchantID)
}

func (s *Store) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account(accountID)
}

func (s *Store) GetTravelWallet(ctx context.Context, walletID string) (*models.TravelWallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wallet(walletID)
}

func (s *Store) FindBudgetByCategoryAndTravel(ctx context.Context, travelID, categoryID string) (*models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget(travelID, categoryID)
}

// ListAccountTransactions returns up to limit entries, newest first. A limit
// of zero or less returns every entry.
func (s *Store) ListAccountTransactions(ctx context.Context, accountID string, limit int32) ([]models.AccountTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.accountTxs[accountID], limit), nil
}

// ListTravelTransactions returns up to limit entries, newest first.
func (s *Store) ListTravelTransactions(ctx context.Context, walletID string, limit int32) ([]models.TravelTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.travelTxs[walletID], limit), nil
}

// Begin opens a unit of work, waiting for the current one to finish.
func (s *Store) Begin(ctx context.Context) (storage.Tx, error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to begin unit of work: %w", ctx.Err())
	}

	return &tx{
		store:    s,
		accounts: make(map[string]models.Account),
		wallets:  make(map[string]models.TravelWallet),
		budgets:  make(map[budgetKey]models.Budget),
	}, nil
}

// The lookups below expect s.mu to be held and return copies.

func (s *Store) merchant(id string) (*models.Merchant, error) {
	m, ok := s.merchants[id]
	if !ok {
		return nil, fmt.Errorf("merchant %s: %w", id, storage.ErrNotFound)
	}
	return &m, nil
}

func (s *Store) account(id string) (*models.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, storage.ErrNotFound)
	}
	return &a, nil
}

func (s *Store) wallet(id string) (*models.TravelWallet, error) {
	w, ok := s.wallets[id]
	if !ok {
		return nil, fmt.Errorf("travel wallet %s: %w", id, storage.ErrNotFound)
	}
	return &w, nil
}

func (s *Store) budget(travelID, categoryID string) (*models.Budget, error) {
	b, ok := s.budgets[budgetKey{travelID, categoryID}]
	if !ok {
		return nil, fmt.Errorf("budget for travel %s and category %s: %w", travelID, categoryID, storage.ErrNotFound)
	}
	return &b, nil
}

func newestFirst[T any](entries []T, limit int32) []T {
	n := len(entries)
	if limit > 0 && int(limit) < n {
		n = int(limit)
	}

	result := make([]T, 0, n)
	for i := len(entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, entries[i])
	}
	return result
}
