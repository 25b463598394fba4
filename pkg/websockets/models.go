package websockets

import (
	"time"

	"github.com/chris/travel-payments/pkg/models"
)

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBudgetAlert is sent when a travel budget crosses a usage threshold.
	MessageTypeBudgetAlert MessageType = "budgetAlert"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BudgetAlertPayload is the payload for a budgetAlert message.
type BudgetAlertPayload struct {
	BudgetID   string         `json:"budget_id"`
	TravelID   string         `json:"travel_id"`
	CategoryID string         `json:"category_id"`
	Threshold  string         `json:"threshold"`
	UsedAmount models.Decimal `json:"used_amount"`
	Amount     models.Decimal `json:"amount"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewBudgetAlert builds the message announcing a threshold crossing.
func NewBudgetAlert(crossing models.ThresholdCrossing) Message {
	return Message{
		Type: MessageTypeBudgetAlert,
		Payload: BudgetAlertPayload{
			BudgetID:   crossing.BudgetID,
			TravelID:   crossing.TravelID,
			CategoryID: crossing.CategoryID,
			Threshold:  string(crossing.Kind),
			UsedAmount: crossing.UsedAmount,
			Amount:     crossing.Amount,
			OccurredAt: crossing.OccurredAt,
		},
	}
}
