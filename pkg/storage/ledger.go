package storage

import (
	"context"

	"github.com/chris/travel-payments/pkg/models"
)

// LedgerReader defines the interface for reading ledger data.
type LedgerReader interface {
	// ListAccountTransactions retrieves the most recent entries of a common account, newest first.
	ListAccountTransactions(ctx context.Context, accountID string, limit int32) ([]models.AccountTransaction, error)

	// ListTravelTransactions retrieves the most recent entries of a travel wallet, newest first.
	ListTravelTransactions(ctx context.Context, walletID string, limit int32) ([]models.TravelTransaction, error)
}
