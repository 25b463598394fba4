package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	fiftyPercent  = decimal.NewFromFloat(0.5)
	eightyPercent = decimal.NewFromFloat(0.8)
)

// Budget tracks spending of one category within one travel. The crossed
// flags only ever go from false to true.
type Budget struct {
	TravelID        string  `json:"travel_id" dynamodbav:"travel_id"`
	CategoryID      string  `json:"category_id" dynamodbav:"category_id"`
	BudgetID        string  `json:"budget_id" dynamodbav:"budget_id"`
	Amount          Decimal `json:"amount" dynamodbav:"amount"`
	UsedAmount      Decimal `json:"used_amount" dynamodbav:"used_amount"`
	FiftyThreshold  Decimal `json:"fifty_threshold" dynamodbav:"fifty_threshold"`
	EightyThreshold Decimal `json:"eighty_threshold" dynamodbav:"eighty_threshold"`
	CrossedFifty    bool    `json:"crossed_fifty" dynamodbav:"crossed_fifty"`
	CrossedEighty   bool    `json:"crossed_eighty" dynamodbav:"crossed_eighty"`
	Version         int64   `json:"version" dynamodbav:"version"`
}

// NewBudget creates an unused budget with thresholds at 50% and 80% of amount.
func NewBudget(budgetID, travelID, categoryID string, amount decimal.Decimal) *Budget {
	return &Budget{
		TravelID:        travelID,
		CategoryID:      categoryID,
		BudgetID:        budgetID,
		Amount:          NewDecimal(amount),
		UsedAmount:      NewDecimal(decimal.Zero),
		FiftyThreshold:  NewDecimal(amount.Mul(fiftyPercent)),
		EightyThreshold: NewDecimal(amount.Mul(eightyPercent)),
		Version:         1,
	}
}

// BudgetState is the notification state of a budget.
type BudgetState int

const (
	BudgetBelow50 BudgetState = iota
	BudgetOver50Under80
	BudgetOver80
)

func (s BudgetState) String() string {
	switch s {
	case BudgetBelow50:
		return "BELOW_50"
	case BudgetOver50Under80:
		return "OVER_50_UNDER_80"
	case BudgetOver80:
		return "OVER_80"
	default:
		return "UNKNOWN"
	}
}

// State derives the budget state from its flags, not from the amounts.
func (b *Budget) State() BudgetState {
	switch {
	case b.CrossedEighty:
		return BudgetOver80
	case b.CrossedFifty:
		return BudgetOver50Under80
	default:
		return BudgetBelow50
	}
}

// ThresholdKind names a budget usage threshold.
type ThresholdKind string

const (
	ThresholdFifty  ThresholdKind = "FIFTY"
	ThresholdEighty ThresholdKind = "EIGHTY"
)

// ThresholdCrossing is emitted once per threshold per budget.
type ThresholdCrossing struct {
	BudgetID   string        `json:"budget_id"`
	TravelID   string        `json:"travel_id"`
	CategoryID string        `json:"category_id"`
	Kind       ThresholdKind `json:"kind"`
	UsedAmount Decimal       `json:"used_amount"`
	Amount     Decimal       `json:"amount"`
	OccurredAt time.Time     `json:"occurred_at"`
}
