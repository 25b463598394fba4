package payment

import (
	"testing"

	"github.com/chris/travel-payments/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplySpend(t *testing.T) {
	tests := []struct {
		name      string
		used      string
		fifty     bool
		eighty    bool
		spend     string
		want      []models.ThresholdKind
		wantState models.BudgetState
	}{
		{"Stays Below", "0", false, false, "49.99", nil, models.BudgetBelow50},
		{"Exactly Fifty", "0", false, false, "50", []models.ThresholdKind{models.ThresholdFifty}, models.BudgetOver50Under80},
		{"Fifty Already Crossed", "55", true, false, "10", nil, models.BudgetOver50Under80},
		{"Exactly Eighty", "55", true, false, "25", []models.ThresholdKind{models.ThresholdEighty}, models.BudgetOver80},
		{"Both At Once", "10", false, false, "75", []models.ThresholdKind{models.ThresholdFifty, models.ThresholdEighty}, models.BudgetOver80},
		{"Already Over Eighty", "85", true, true, "30", nil, models.BudgetOver80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.NewBudget("bud-1", "travel-1", "food", decimal.NewFromInt(100))
			b.UsedAmount = models.MustDecimal(tt.used)
			b.CrossedFifty = tt.fifty
			b.CrossedEighty = tt.eighty

			got := applySpend(b, decimal.RequireFromString(tt.spend))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantState, b.State())
			assert.True(t, b.UsedAmount.Equal(decimal.RequireFromString(tt.used).Add(decimal.RequireFromString(tt.spend))))
		})
	}
}

// Flags stay set even if usage is later observed below a threshold.
func TestApplySpendNeverClearsFlags(t *testing.T) {
	b := models.NewBudget("bud-1", "travel-1", "food", decimal.NewFromInt(100))
	b.CrossedFifty = true
	b.CrossedEighty = true

	got := applySpend(b, decimal.NewFromInt(1))

	assert.Empty(t, got)
	assert.True(t, b.CrossedFifty)
	assert.True(t, b.CrossedEighty)
}
