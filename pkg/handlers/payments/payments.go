package payments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chris/travel-payments/pkg/api"
	"github.com/chris/travel-payments/pkg/handlers/response"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/mapping"
	"github.com/chris/travel-payments/pkg/payment"
	"github.com/chris/travel-payments/pkg/storage"
)

const (
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeConflict           = "CONCURRENT_UPDATE_CONFLICT"
)

// PaymentsHandler holds the dependencies for payment handlers.
type PaymentsHandler struct {
	Processor payment.Processor
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(processor payment.Processor) *PaymentsHandler {
	return &PaymentsHandler{Processor: processor}
}

// CreatePayment settles a payment and responds with its result.
func (h *PaymentsHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePaymentJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.WriteError(w, http.StatusBadRequest, CodeInvalidRequestBody, "invalid request body")
		return
	}

	req, err := mapping.ToDomainPaymentRequest(&body)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, string(payment.CodeInvalidAmount), "amount must be a decimal number")
		return
	}

	result, err := h.Processor.Process(r.Context(), req)
	if err != nil {
		writePaymentError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, mapping.ToApiPaymentResult(result))
}

// StatusForCode maps a payment error code to its HTTP status.
func StatusForCode(code payment.ErrorCode) int {
	switch code {
	case payment.CodeMerchantNotFound, payment.CodeStoreNotFound, payment.CodeBudgetNotFound:
		return http.StatusNotFound
	case payment.CodeCurrencyMismatch, payment.CodeInvalidAmount, payment.CodeUnsupportedStoreKind:
		return http.StatusBadRequest
	case payment.CodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writePaymentError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *payment.Error
	switch {
	case errors.As(err, &perr):
		response.WriteError(w, StatusForCode(perr.Code), string(perr.Code), perr.Message)
	case errors.Is(err, storage.ErrConflict):
		response.WriteError(w, http.StatusConflict, CodeConflict, "the payment conflicted with concurrent updates, try again")
	default:
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Msg("failed to process payment")
		response.WriteInternalError(w)
	}
}
