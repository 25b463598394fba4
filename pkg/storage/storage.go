package storage

import (
	"context"

	"github.com/chris/travel-payments/pkg/models"
)

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (ApiStore, UnitOfWork, etc.) instead of this one.
type Storage interface {
	ApiStore
	UnitOfWork
}

// Repository looks up single records by identity. Every method returns an
// error wrapping ErrNotFound when the record does not exist.
type Repository interface {
	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	GetTravelWallet(ctx context.Context, walletID string) (*models.TravelWallet, error)
	FindBudgetByCategoryAndTravel(ctx context.Context, travelID, categoryID string) (*models.Budget, error)
}

// Writer stages mutations inside a unit of work. Nothing is visible to other
// readers until Commit.
type Writer interface {
	SaveAccount(ctx context.Context, account *models.Account) error
	SaveTravelWallet(ctx context.Context, wallet *models.TravelWallet) error
	SaveBudget(ctx context.Context, budget *models.Budget) error
	AppendAccountTransaction(ctx context.Context, entry *models.AccountTransaction) error
	AppendTravelTransaction(ctx context.Context, entry *models.TravelTransaction) error
}

// Tx is an open unit of work. Reads made through it are the basis for the
// optimistic checks applied at Commit.
type Tx interface {
	Repository
	Writer

	// Commit applies every staged write atomically, or none of them.
	Commit(ctx context.Context) error

	// Rollback discards staged writes. It is a no-op after Commit, so it can
	// always be deferred.
	Rollback(ctx context.Context) error
}

// UnitOfWork opens transactions spanning several records.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}
