package stores

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/travel-payments/pkg/api"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage"
	"github.com/chris/travel-payments/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestGetAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := new(mocks.ApiStore)
		store.On("GetAccount", mock.Anything, "acc-1").Return(&models.Account{
			AccountID:     "acc-1",
			AccountNumber: "110-1",
			Balance:       models.MustDecimal("9000"),
			Currency:      "KRW",
			Version:       3,
		}, nil)

		h := NewStoresHandler(store)
		rr := httptest.NewRecorder()
		h.GetAccount(rr, httptest.NewRequest(http.MethodGet, "/accounts/acc-1", nil), "acc-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var account api.Account
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &account))
		assert.Equal(t, "9000", account.Balance)
		assert.Equal(t, int64(3), account.Version)
		assert.Nil(t, account.CreatedAt)
	})

	t.Run("Not Found", func(t *testing.T) {
		store := new(mocks.ApiStore)
		store.On("GetAccount", mock.Anything, "missing").Return(nil, fmt.Errorf("account missing: %w", storage.ErrNotFound))

		h := NewStoresHandler(store)
		rr := httptest.NewRecorder()
		h.GetAccount(rr, httptest.NewRequest(http.MethodGet, "/accounts/missing", nil), "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), CodeAccountNotFound)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		store := new(mocks.ApiStore)
		store.On("GetAccount", mock.Anything, "acc-1").Return(nil, errors.New("throttled"))

		h := NewStoresHandler(store)
		rr := httptest.NewRecorder()
		h.GetAccount(rr, httptest.NewRequest(http.MethodGet, "/accounts/acc-1", nil), "acc-1")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "throttled")
	})
}

func TestGetTravelWallet(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store := new(mocks.ApiStore)
	store.On("GetTravelWallet", mock.Anything, "wal-1").Return(&models.TravelWallet{
		WalletID:  "wal-1",
		TravelID:  "travel-1",
		Balance:   models.MustDecimal("250.75"),
		Currency:  "USD",
		Version:   1,
		CreatedAt: created,
	}, nil)
	store.On("GetTravelWallet", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	h := NewStoresHandler(store)

	rr := httptest.NewRecorder()
	h.GetTravelWallet(rr, httptest.NewRequest(http.MethodGet, "/travel-wallets/wal-1", nil), "wal-1")
	assert.Equal(t, http.StatusOK, rr.Code)

	var wallet api.TravelWallet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &wallet))
	assert.Equal(t, "250.75", wallet.Balance)
	require.NotNil(t, wallet.CreatedAt)
	assert.True(t, created.Equal(*wallet.CreatedAt))

	rr = httptest.NewRecorder()
	h.GetTravelWallet(rr, httptest.NewRequest(http.MethodGet, "/travel-wallets/missing", nil), "missing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), CodeTravelWalletNotFound)
}

func TestListAccountTransactions(t *testing.T) {
	entries := []models.AccountTransaction{
		{EntryID: "e-2", AccountID: "acc-1", Amount: models.MustDecimal("300"), BalanceAfter: models.MustDecimal("9400"), Type: models.AccountTransactionTypeWithdrawal, TypeName: models.AccountTransactionTypeNameWithdrawal},
		{EntryID: "e-1", AccountID: "acc-1", Amount: models.MustDecimal("300"), BalanceAfter: models.MustDecimal("9700"), Type: models.AccountTransactionTypeWithdrawal, TypeName: models.AccountTransactionTypeNameWithdrawal},
	}

	tests := []struct {
		name       string
		limit      *int
		wantLimit  int32
		wantStatus int
	}{
		{"Default Limit", nil, DefaultLimit, http.StatusOK},
		{"Explicit Limit", intPtr(5), 5, http.StatusOK},
		{"Max Limit", intPtr(MaxLimit), MaxLimit, http.StatusOK},
		{"Zero Limit", intPtr(0), 0, http.StatusBadRequest},
		{"Limit Too Large", intPtr(MaxLimit + 1), 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.ApiStore)
			if tt.wantStatus == http.StatusOK {
				store.On("ListAccountTransactions", mock.Anything, "acc-1", tt.wantLimit).Return(entries, nil)
			}

			h := NewStoresHandler(store)
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/transactions", nil)
			h.ListAccountTransactions(rr, req, "acc-1", api.ListAccountTransactionsParams{Limit: tt.limit})

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, rr.Body.String(), CodeInvalidLimit)
				store.AssertNotCalled(t, "ListAccountTransactions", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			var got []api.AccountTransaction
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			require.Len(t, got, 2)
			assert.Equal(t, "e-2", got[0].EntryId)
			assert.Equal(t, "9400", got[0].BalanceAfter)
			store.AssertExpectations(t)
		})
	}
}

func TestListTravelTransactions(t *testing.T) {
	t.Run("Empty Ledger", func(t *testing.T) {
		store := new(mocks.ApiStore)
		store.On("ListTravelTransactions", mock.Anything, "wal-1", int32(DefaultLimit)).Return([]models.TravelTransaction{}, nil)

		h := NewStoresHandler(store)
		rr := httptest.NewRecorder()
		h.ListTravelTransactions(rr, httptest.NewRequest(http.MethodGet, "/travel-wallets/wal-1/transactions", nil), "wal-1", api.ListTravelTransactionsParams{})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Storage Failure", func(t *testing.T) {
		store := new(mocks.ApiStore)
		store.On("ListTravelTransactions", mock.Anything, "wal-1", int32(DefaultLimit)).Return(nil, errors.New("boom"))

		h := NewStoresHandler(store)
		rr := httptest.NewRecorder()
		h.ListTravelTransactions(rr, httptest.NewRequest(http.MethodGet, "/travel-wallets/wal-1/transactions", nil), "wal-1", api.ListTravelTransactionsParams{})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
