package websockets

import (
	"context"

	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/models"
	"github.com/chris/travel-payments/pkg/notifier"
)

// AlertNotifier turns budget threshold crossings into budgetAlert messages.
type AlertNotifier struct {
	Publisher Publisher
}

var _ notifier.Notifier = AlertNotifier{}

func (n AlertNotifier) OnBudgetThresholdCrossed(ctx context.Context, crossing models.ThresholdCrossing) {
	if err := n.Publisher.Publish(ctx, NewBudgetAlert(crossing)); err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).
			Str("budget_id", crossing.BudgetID).
			Str("threshold", string(crossing.Kind)).
			Msg("failed to publish budget alert")
	}
}
