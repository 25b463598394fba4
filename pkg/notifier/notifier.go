package notifier

import (
	"context"

	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/models"
)

// Notifier is told about budget threshold crossings after the payment that
// caused them has been committed. Delivery is fire-and-forget: implementations
// handle and log their own failures.
type Notifier interface {
	OnBudgetThresholdCrossed(ctx context.Context, crossing models.ThresholdCrossing)
}

// NoOp discards every notification.
type NoOp struct{}

func (NoOp) OnBudgetThresholdCrossed(ctx context.Context, crossing models.ThresholdCrossing) {}

// LogNotifier only logs crossings. Used when no alert queue is configured.
type LogNotifier struct{}

func (LogNotifier) OnBudgetThresholdCrossed(ctx context.Context, crossing models.ThresholdCrossing) {
	log := logger.FromContext(ctx)
	log.Info().
		Str("budget_id", crossing.BudgetID).
		Str("travel_id", crossing.TravelID).
		Str("category_id", crossing.CategoryID).
		Str("threshold", string(crossing.Kind)).
		Str("used_amount", crossing.UsedAmount.String()).
		Msg("budget threshold crossed")
}

// Fanout hands every crossing to each notifier in order.
type Fanout []Notifier

func (f Fanout) OnBudgetThresholdCrossed(ctx context.Context, crossing models.ThresholdCrossing) {
	for _, n := range f {
		n.OnBudgetThresholdCrossed(ctx, crossing)
	}
}

var (
	_ Notifier = NoOp{}
	_ Notifier = LogNotifier{}
	_ Notifier = Fanout{}
)
