package main

import (
	"time"

	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/storage/memory"
	"github.com/shopspring/decimal"
)

// seed loads demo data into the in-memory backend.
func seed(store *memory.Store) {
	now := time.Now().UTC()

	store.PutAccount(models.Account{
		AccountID:     "acc-demo",
		AccountNumber: "110-000-000001",
		OwnerID:       "user-demo",
		Balance:       models.MustDecimal("1000000"),
		Currency:      "KRW",
		Version:       1,
		CreatedAt:     now,
	})
	store.PutTravelWallet(models.TravelWallet{
		WalletID:  "wal-demo",
		TravelID:  "travel-demo",
		Balance:   models.MustDecimal("1500.00"),
		Currency:  "USD",
		Version:   1,
		CreatedAt: now,
	})

	store.PutMerchant(models.Merchant{MerchantID: "m-seoul-mart", Name: "Seoul Mart", Currency: "KRW", CategoryID: "food", AccountNumber: "220-000-000001"})
	store.PutMerchant(models.Merchant{MerchantID: "m-ny-diner", Name: "NY Diner", Currency: "USD", CategoryID: "food", AccountNumber: "330-000-000001"})
	store.PutMerchant(models.Merchant{MerchantID: "m-ny-hotel", Name: "NY Hotel", Currency: "USD", CategoryID: "lodging", AccountNumber: "330-000-000002"})

	store.PutBudget(*models.NewBudget("bud-demo-food", "travel-demo", "food", decimal.NewFromInt(300)))
	store.PutBudget(*models.NewBudget("bud-demo-lodging", "travel-demo", "lodging", decimal.NewFromInt(800)))
}
