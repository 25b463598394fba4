package handlers

import (
	"net/http"

	"github.com/chris/travel-payments/pkg/api"
	"github.com/chris/travel-payments/pkg/handlers/budgets"
	"github.com/chris/travel-payments/pkg/handlers/merchants"
	"github.com/chris/travel-payments/pkg/handlers/payments"
	"github.com/chris/travel-payments/pkg/handlers/response"
	"github.com/chris/travel-payments/pkg/handlers/stores"
	"github.com/chris/travel-payments/pkg/payment"
	"github.com/chris/travel-payments/pkg/storage"
	"github.com/go-chi/chi/v5"
)

const CodeInvalidParameter = "INVALID_PARAMETER"

// ApiHandler implements the generated server interface by composing the
// handlers of each resource.
type ApiHandler struct {
	*payments.PaymentsHandler
	*stores.StoresHandler
	*budgets.BudgetsHandler
	*merchants.MerchantsHandler
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(processor payment.Processor, store storage.ApiStore) *ApiHandler {
	return &ApiHandler{
		PaymentsHandler:  payments.NewPaymentsHandler(processor),
		StoresHandler:    stores.NewStoresHandler(store),
		BudgetsHandler:   budgets.NewBudgetsHandler(store),
		MerchantsHandler: merchants.NewMerchantsHandler(store),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// Mount registers the API routes on r. Parameter binding failures get the
// same {code, message} body as handler errors.
func Mount(r chi.Router, si api.ServerInterface) http.Handler {
	return api.HandlerWithOptions(si, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			response.WriteError(w, http.StatusBadRequest, CodeInvalidParameter, err.Error())
		},
	})
}
