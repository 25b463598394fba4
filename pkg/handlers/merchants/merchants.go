package merchants

import (
	"errors"
	"net/http"

	"github.com/chris/travel-payments/pkg/api"
	"github.com/chris/travel-payments/pkg/handlers/response"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/mapping"
	"github.com/chris/travel-payments/pkg/payment"
	"github.com/chris/travel-payments/pkg/storage"
)

// MerchantsHandler serves merchant lookups.
type MerchantsHandler struct {
	Store storage.Repository
}

// NewMerchantsHandler creates a new MerchantsHandler.
func NewMerchantsHandler(store storage.Repository) *MerchantsHandler {
	return &MerchantsHandler{Store: store}
}

// GetMerchant returns the merchant shown to the payer before paying.
func (h *MerchantsHandler) GetMerchant(w http.ResponseWriter, r *http.Request, merchantId api.MerchantId) {
	merchant, err := h.Store.GetMerchant(r.Context(), merchantId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteError(w, http.StatusNotFound, string(payment.CodeMerchantNotFound), payment.ErrMerchantNotFound.Message)
			return
		}
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("merchant_id", merchantId).Msg("failed to load merchant")
		response.WriteInternalError(w)
		return
	}

	response.WriteJSON(w, http.StatusOK, mapping.ToApiMerchant(merchant))
}
