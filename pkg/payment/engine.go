package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/notifier"
	"github.com/chris/travel-payments/pkg/storage"
)

const defaultMaxAttempts = 3

// Engine settles payments against accounts and travel wallets. Every attempt
// runs inside one unit of work: the store debit, its ledger entry and any
// budget update are committed together or not at all.
type Engine struct {
	uow         storage.UnitOfWork
	notifier    notifier.Notifier
	now         func() time.Time
	maxAttempts int
	settlements map[StoreKind]settlement
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to timestamp ledger entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMaxAttempts sets how many times a payment is attempted when it loses a
// race with a concurrent update. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// NewEngine creates an Engine. A nil notifier discards crossings.
func NewEngine(uow storage.UnitOfWork, n notifier.Notifier, opts ...Option) *Engine {
	if n == nil {
		n = notifier.NoOp{}
	}

	e := &Engine{
		uow:         uow,
		notifier:    n,
		now:         time.Now,
		maxAttempts: defaultMaxAttempts,
		settlements: map[StoreKind]settlement{
			StoreKindCommon: commonSettlement{},
			StoreKindTravel: travelSettlement{},
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Make sure we conform to the interface
var _ Processor = (*Engine)(nil)

// Process settles req. Expected failures are returned as *Error; a
// storage.ErrConflict that persists past the last attempt is returned wrapped.
// Threshold crossings are reported to the notifier only after the commit, on a
// context that is not cancelled with ctx.
func (e *Engine) Process(ctx context.Context, req Request) (*Result, error) {
	s, ok := e.settlements[req.StoreKind]
	if !ok {
		return nil, ErrUnsupportedStoreKind
	}

	log := logger.FromContext(ctx).With().
		Str("store_kind", string(req.StoreKind)).
		Str("store_id", req.StoreID).
		Str("merchant_id", req.MerchantID).
		Logger()

	var (
		result    *Result
		crossings []models.ThresholdCrossing
		err       error
	)
	for attempt := 1; ; attempt++ {
		result, crossings, err = e.attempt(ctx, s, req)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrConflict) || attempt >= e.maxAttempts {
			return nil, err
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("payment conflicted with a concurrent update, retrying")
	}

	log.Debug().
		Str("amount", result.Amount.String()).
		Str("currency", result.Currency).
		Msg("payment settled")

	// The flags are committed, so a crossing is never re-fired. Hooks must not
	// fail because the caller went away.
	notifyCtx := context.WithoutCancel(ctx)
	for _, crossing := range crossings {
		log.Info().
			Str("budget_id", crossing.BudgetID).
			Str("threshold", string(crossing.Kind)).
			Str("used_amount", crossing.UsedAmount.String()).
			Msg("budget threshold crossed")
		e.notifier.OnBudgetThresholdCrossed(notifyCtx, crossing)
	}

	return result, nil
}

func (e *Engine) attempt(ctx context.Context, s settlement, req Request) (*Result, []models.ThresholdCrossing, error) {
	tx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer tx.Rollback(ctx)

	merchant, err := tx.GetMerchant(ctx, req.MerchantID)
	if err != nil {
		return nil, nil, lookupError(err, ErrMerchantNotFound, "merchant")
	}

	store, err := s.load(ctx, tx, req.StoreID)
	if err != nil {
		return nil, nil, lookupError(err, ErrStoreNotFound, "withdrawal store")
	}

	if err := validate(store, merchant, req.Amount); err != nil {
		return nil, nil, err
	}

	store.Debit(req.Amount)

	crossings, err := s.record(ctx, tx, store, merchant, req.Amount, e.now().UTC())
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	return &Result{
		Currency:     merchant.Currency,
		MerchantName: merchant.Name,
		Amount:       req.Amount,
		MerchantID:   merchant.MerchantID,
	}, crossings, nil
}

// lookupError maps a missing entity to notFound and wraps anything else.
func lookupError(err error, notFound *Error, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}
