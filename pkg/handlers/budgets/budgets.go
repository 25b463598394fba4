package budgets

import (
	"errors"
	"net/http"

	"github.com/chris/travel-payments/pkg/handlers/response"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/mapping"
	"github.com/chris/travel-payments/pkg/payment"
	"github.com/chris/travel-payments/pkg/storage"
)

// BudgetsHandler serves travel budgets.
type BudgetsHandler struct {
	Store storage.Repository
}

// NewBudgetsHandler creates a new BudgetsHandler.
func NewBudgetsHandler(store storage.Repository) *BudgetsHandler {
	return &BudgetsHandler{Store: store}
}

// GetTravelBudget returns the budget of one category within a travel,
// including its notification state.
func (h *BudgetsHandler) GetTravelBudget(w http.ResponseWriter, r *http.Request, travelId string, categoryId string) {
	budget, err := h.Store.FindBudgetByCategoryAndTravel(r.Context(), travelId, categoryId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteError(w, http.StatusNotFound, string(payment.CodeBudgetNotFound), payment.ErrBudgetNotFound.Message)
			return
		}
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("travel_id", travelId).Str("category_id", categoryId).Msg("failed to load travel budget")
		response.WriteInternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, mapping.ToApiBudget(budget))
}
