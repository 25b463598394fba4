package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/notifier/mocks"
	"github.com/chris/travel-payments/pkg/storage"
	"github.com/chris/travel-payments/pkg/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestStore() *memory.Store {
	s := memory.New()
	s.PutAccount(models.Account{AccountID: "acc-1", AccountNumber: "110-1", Balance: models.MustDecimal("10000"), Currency: "KRW", Version: 1})
	s.PutAccount(models.Account{AccountID: "acc-low", AccountNumber: "110-2", Balance: models.MustDecimal("100"), Currency: "KRW", Version: 1})
	s.PutTravelWallet(models.TravelWallet{WalletID: "wal-1", TravelID: "travel-1", Balance: models.MustDecimal("1000"), Currency: "USD", Version: 1})
	s.PutMerchant(models.Merchant{MerchantID: "m-krw", Name: "Coffee Bean", Currency: "KRW", CategoryID: "food", AccountNumber: "220-9"})
	s.PutMerchant(models.Merchant{MerchantID: "m-usd", Name: "Diner", Currency: "USD", CategoryID: "food", AccountNumber: "330-7"})
	s.PutMerchant(models.Merchant{MerchantID: "m-hotel", Name: "Hotel", Currency: "USD", CategoryID: "lodging", AccountNumber: "440-2"})
	s.PutBudget(*models.NewBudget("bud-1", "travel-1", "food", decimal.NewFromInt(100)))
	return s
}

func newTestEngine(s storage.UnitOfWork, n *mocks.Notifier) *Engine {
	return NewEngine(s, n, WithClock(func() time.Time { return fixedNow }))
}

func crossingOf(kind models.ThresholdKind) interface{} {
	return mock.MatchedBy(func(c models.ThresholdCrossing) bool {
		return c.Kind == kind && c.BudgetID == "bud-1"
	})
}

func TestProcessCommonAccount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	engine := newTestEngine(s, mocks.NewNotifier(t))

	result, err := engine.Process(ctx, Request{
		StoreKind:  StoreKindCommon,
		StoreID:    "acc-1",
		MerchantID: "m-krw",
		Amount:     decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, "KRW", result.Currency)
	assert.Equal(t, "Coffee Bean", result.MerchantName)
	assert.Equal(t, "m-krw", result.MerchantID)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(3000)))

	acct, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(7000)))
	assert.Equal(t, int64(2), acct.Version)

	entries, err := s.ListAccountTransactions(ctx, "acc-1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.NotEmpty(t, entry.EntryID)
	assert.Equal(t, models.AccountTransactionTypeWithdrawal, entry.Type)
	assert.Equal(t, models.AccountTransactionTypeNameWithdrawal, entry.TypeName)
	assert.Equal(t, "Coffee Bean", entry.Name)
	assert.Equal(t, "220-9", entry.CounterpartyAccountNumber)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(3000)))
	assert.True(t, entry.BalanceAfter.Equal(decimal.NewFromInt(7000)))
	assert.Equal(t, fixedNow, entry.Timestamp)
}

func TestProcessTravelWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("Below Threshold", func(t *testing.T) {
		s := newTestStore()
		engine := newTestEngine(s, mocks.NewNotifier(t))

		_, err := engine.Process(ctx, Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(30)})
		require.NoError(t, err)

		wallet, err := s.GetTravelWallet(ctx, "wal-1")
		require.NoError(t, err)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(970)))

		budget, err := s.FindBudgetByCategoryAndTravel(ctx, "travel-1", "food")
		require.NoError(t, err)
		assert.True(t, budget.UsedAmount.Equal(decimal.NewFromInt(30)))
		assert.Equal(t, models.BudgetBelow50, budget.State())

		entries, err := s.ListTravelTransactions(ctx, "wal-1", 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "travel-1", entries[0].TravelID)
		assert.Equal(t, "food", entries[0].CategoryID)
		assert.Equal(t, "Diner", entries[0].Name)
		assert.True(t, entries[0].BalanceAfter.Equal(decimal.NewFromInt(970)))
	})

	t.Run("Crosses Fifty Once", func(t *testing.T) {
		s := newTestStore()
		n := mocks.NewNotifier(t)
		n.On("OnBudgetThresholdCrossed", mock.Anything, crossingOf(models.ThresholdFifty)).Once()
		engine := newTestEngine(s, n)

		_, err := engine.Process(ctx, Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(50)})
		require.NoError(t, err)

		// Still between 50% and 80%: nothing new fires.
		_, err = engine.Process(ctx, Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(10)})
		require.NoError(t, err)

		budget, err := s.FindBudgetByCategoryAndTravel(ctx, "travel-1", "food")
		require.NoError(t, err)
		assert.True(t, budget.UsedAmount.Equal(decimal.NewFromInt(60)))
		assert.Equal(t, models.BudgetOver50Under80, budget.State())
	})

	t.Run("Crosses Eighty After Fifty", func(t *testing.T) {
		s := newTestStore()
		n := mocks.NewNotifier(t)
		n.On("OnBudgetThresholdCrossed", mock.Anything, crossingOf(models.ThresholdFifty)).Once()
		n.On("OnBudgetThresholdCrossed", mock.Anything, crossingOf(models.ThresholdEighty)).Once()
		engine := newTestEngine(s, n)

		for _, amount := range []int64{60, 25, 10} {
			_, err := engine.Process(ctx, Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(amount)})
			require.NoError(t, err)
		}

		budget, err := s.FindBudgetByCategoryAndTravel(ctx, "travel-1", "food")
		require.NoError(t, err)
		assert.Equal(t, models.BudgetOver80, budget.State())
	})

	t.Run("Crosses Both In One Payment", func(t *testing.T) {
		s := newTestStore()
		n := mocks.NewNotifier(t)
		var kinds []models.ThresholdKind
		n.On("OnBudgetThresholdCrossed", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				kinds = append(kinds, args.Get(1).(models.ThresholdCrossing).Kind)
			}).Twice()
		engine := newTestEngine(s, n)

		_, err := engine.Process(ctx, Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(90)})
		require.NoError(t, err)

		assert.Equal(t, []models.ThresholdKind{models.ThresholdFifty, models.ThresholdEighty}, kinds)
	})

	t.Run("Budget Not Found Leaves State Unchanged", func(t *testing.T) {
		s := newTestStore()
		engine := newTestEngine(s, mocks.NewNotifier(t))

		_, err := engine.Process(ctx, Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-hotel", Amount: decimal.NewFromInt(30)})
		assert.ErrorIs(t, err, ErrBudgetNotFound)

		wallet, err := s.GetTravelWallet(ctx, "wal-1")
		require.NoError(t, err)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, int64(1), wallet.Version)

		entries, err := s.ListTravelTransactions(ctx, "wal-1", 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestProcessValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr *Error
	}{
		{
			name:    "Unsupported Kind",
			req:     Request{StoreKind: "SAVINGS", StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.NewFromInt(1)},
			wantErr: ErrUnsupportedStoreKind,
		},
		{
			name:    "Merchant Checked Before Store",
			req:     Request{StoreKind: StoreKindCommon, StoreID: "missing", MerchantID: "missing", Amount: decimal.NewFromInt(1)},
			wantErr: ErrMerchantNotFound,
		},
		{
			name:    "Store Not Found",
			req:     Request{StoreKind: StoreKindTravel, StoreID: "missing", MerchantID: "m-usd", Amount: decimal.NewFromInt(1)},
			wantErr: ErrStoreNotFound,
		},
		{
			name:    "Account ID Is Not A Wallet ID",
			req:     Request{StoreKind: StoreKindTravel, StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.NewFromInt(1)},
			wantErr: ErrStoreNotFound,
		},
		{
			name:    "Currency Checked Before Amount",
			req:     Request{StoreKind: StoreKindCommon, StoreID: "acc-1", MerchantID: "m-usd", Amount: decimal.Zero},
			wantErr: ErrCurrencyMismatch,
		},
		{
			name:    "Zero Amount",
			req:     Request{StoreKind: StoreKindCommon, StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.Zero},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "Negative Amount",
			req:     Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(-5)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "Insufficient Balance",
			req:     Request{StoreKind: StoreKindCommon, StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.NewFromInt(10001)},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:    "Balance 100 Amount 150",
			req:     Request{StoreKind: StoreKindCommon, StoreID: "acc-low", MerchantID: "m-krw", Amount: decimal.NewFromInt(150)},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:    "Travel Wallet Insufficient Balance",
			req:     Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(1001)},
			wantErr: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestStore()
			engine := newTestEngine(s, mocks.NewNotifier(t))

			result, err := engine.Process(ctx, tt.req)
			assert.Nil(t, result)
			require.ErrorIs(t, err, tt.wantErr)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantErr.Code, perr.Code)

			acct, err := s.GetAccount(ctx, "acc-1")
			require.NoError(t, err)
			assert.True(t, acct.Balance.Equal(decimal.NewFromInt(10000)))
			low, err := s.GetAccount(ctx, "acc-low")
			require.NoError(t, err)
			assert.True(t, low.Balance.Equal(decimal.NewFromInt(100)))
			assert.Equal(t, int64(1), low.Version)
			wallet, err := s.GetTravelWallet(ctx, "wal-1")
			require.NoError(t, err)
			assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(1000)))

			// No ledger entry is written for a rejected payment.
			for _, accountID := range []string{"acc-1", "acc-low"} {
				entries, err := s.ListAccountTransactions(ctx, accountID, 0)
				require.NoError(t, err)
				assert.Empty(t, entries)
			}
			travelEntries, err := s.ListTravelTransactions(ctx, "wal-1", 0)
			require.NoError(t, err)
			assert.Empty(t, travelEntries)

			budget, err := s.FindBudgetByCategoryAndTravel(ctx, "travel-1", "food")
			require.NoError(t, err)
			assert.True(t, budget.UsedAmount.IsZero())
		})
	}
}

func TestProcessExactBalance(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	engine := newTestEngine(s, mocks.NewNotifier(t))

	_, err := engine.Process(ctx, Request{StoreKind: StoreKindCommon, StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.NewFromInt(10000)})
	require.NoError(t, err)

	acct, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, acct.Balance.IsZero())
}

// conflictingUoW fails the commit of the first n units of work.
type conflictingUoW struct {
	storage.UnitOfWork
	mu     sync.Mutex
	n      int
	begins int
}

func (c *conflictingUoW) Begin(ctx context.Context) (storage.Tx, error) {
	tx, err := c.UnitOfWork.Begin(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.begins++
	if c.n > 0 {
		c.n--
		return conflictingTx{tx}, nil
	}
	return tx, nil
}

type conflictingTx struct {
	storage.Tx
}

func (c conflictingTx) Commit(ctx context.Context) error {
	if err := c.Tx.Rollback(ctx); err != nil {
		return err
	}
	return fmt.Errorf("account acc-1: %w", storage.ErrConflict)
}

func TestProcessRetriesConflicts(t *testing.T) {
	ctx := context.Background()
	req := Request{StoreKind: StoreKindCommon, StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.NewFromInt(1000)}

	t.Run("Succeeds After Retry", func(t *testing.T) {
		s := newTestStore()
		uow := &conflictingUoW{UnitOfWork: s, n: 2}
		engine := NewEngine(uow, mocks.NewNotifier(t), WithMaxAttempts(3))

		_, err := engine.Process(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 3, uow.begins)

		acct, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(decimal.NewFromInt(9000)))
	})

	t.Run("Gives Up", func(t *testing.T) {
		s := newTestStore()
		uow := &conflictingUoW{UnitOfWork: s, n: 5}
		engine := NewEngine(uow, mocks.NewNotifier(t), WithMaxAttempts(2))

		_, err := engine.Process(ctx, req)
		assert.ErrorIs(t, err, storage.ErrConflict)
		assert.Equal(t, 2, uow.begins)

		acct, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.True(t, acct.Balance.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("Validation Errors Are Not Retried", func(t *testing.T) {
		s := newTestStore()
		uow := &conflictingUoW{UnitOfWork: s}
		engine := NewEngine(uow, mocks.NewNotifier(t))

		_, err := engine.Process(ctx, Request{StoreKind: StoreKindCommon, StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.Zero})
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, 1, uow.begins)
	})
}

func TestProcessConcurrentPayments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	engine := newTestEngine(s, mocks.NewNotifier(t))

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Process(ctx, Request{StoreKind: StoreKindCommon, StoreID: "acc-1", MerchantID: "m-krw", Amount: decimal.NewFromInt(1000)})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrInsufficientBalance):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 2, insufficient)

	acct, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, acct.Balance.IsZero())

	entries, err := s.ListAccountTransactions(ctx, "acc-1", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

// cancellingUoW cancels the caller's context right after a successful commit,
// as a client hanging up mid-request would.
type cancellingUoW struct {
	storage.UnitOfWork
	cancel context.CancelFunc
}

func (c cancellingUoW) Begin(ctx context.Context) (storage.Tx, error) {
	tx, err := c.UnitOfWork.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return cancellingTx{Tx: tx, cancel: c.cancel}, nil
}

type cancellingTx struct {
	storage.Tx
	cancel context.CancelFunc
}

func (c cancellingTx) Commit(ctx context.Context) error {
	if err := c.Tx.Commit(ctx); err != nil {
		return err
	}
	c.cancel()
	return nil
}

func TestNotifierOutlivesCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newTestStore()
	n := mocks.NewNotifier(t)
	var hookErr error
	n.On("OnBudgetThresholdCrossed", mock.Anything, crossingOf(models.ThresholdFifty)).
		Run(func(args mock.Arguments) {
			hookErr = args.Get(0).(context.Context).Err()
		}).Once()
	engine := NewEngine(cancellingUoW{UnitOfWork: s, cancel: cancel}, n, WithClock(func() time.Time { return fixedNow }))

	_, err := engine.Process(ctx, Request{StoreKind: StoreKindTravel, StoreID: "wal-1", MerchantID: "m-usd", Amount: decimal.NewFromInt(55)})
	require.NoError(t, err)

	require.Error(t, ctx.Err())
	assert.NoError(t, hookErr)

	budget, err := s.FindBudgetByCategoryAndTravel(context.Background(), "travel-1", "food")
	require.NoError(t, err)
	assert.True(t, budget.CrossedFifty)
}
