package stores

import (
	"errors"
	"net/http"

	"github.com/chris/travel-payments/pkg/api"
	"github.com/chris/travel-payments/pkg/handlers/response"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/mapping"
	"github.com/chris/travel-payments/pkg/storage"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	CodeAccountNotFound      = "ACCOUNT_NOT_FOUND"
	CodeTravelWalletNotFound = "TRAVEL_WALLET_NOT_FOUND"
	CodeInvalidLimit         = "INVALID_LIMIT"
)

// StoresHandler serves accounts, travel wallets and their ledgers.
type StoresHandler struct {
	Store storage.ApiStore
}

// NewStoresHandler creates a new StoresHandler.
func NewStoresHandler(store storage.ApiStore) *StoresHandler {
	return &StoresHandler{Store: store}
}

func (h *StoresHandler) GetAccount(w http.ResponseWriter, r *http.Request, accountId api.AccountId) {
	account, err := h.Store.GetAccount(r.Context(), accountId)
	if err != nil {
		writeLookupError(w, r, err, CodeAccountNotFound, "account not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, mapping.ToApiAccount(account))
}

func (h *StoresHandler) ListAccountTransactions(w http.ResponseWriter, r *http.Request, accountId api.AccountId, params api.ListAccountTransactionsParams) {
	limit, ok := parseLimit(w, params.Limit)
	if !ok {
		return
	}

	entries, err := h.Store.ListAccountTransactions(r.Context(), accountId, limit)
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("account_id", accountId).Msg("failed to list account transactions")
		response.WriteInternalError(w)
		return
	}

	apiEntries := make([]*api.AccountTransaction, len(entries))
	for i := range entries {
		apiEntries[i] = mapping.ToApiAccountTransaction(&entries[i])
	}

	response.WriteJSON(w, http.StatusOK, apiEntries)
}

func (h *StoresHandler) GetTravelWallet(w http.ResponseWriter, r *http.Request, walletId api.WalletId) {
	wallet, err := h.Store.GetTravelWallet(r.Context(), walletId)
	if err != nil {
		writeLookupError(w, r, err, CodeTravelWalletNotFound, "travel wallet not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, mapping.ToApiTravelWallet(wallet))
}

func (h *StoresHandler) ListTravelTransactions(w http.ResponseWriter, r *http.Request, walletId api.WalletId, params api.ListTravelTransactionsParams) {
	limit, ok := parseLimit(w, params.Limit)
	if !ok {
		return
	}

	entries, err := h.Store.ListTravelTransactions(r.Context(), walletId, limit)
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("wallet_id", walletId).Msg("failed to list travel transactions")
		response.WriteInternalError(w)
		return
	}

	apiEntries := make([]*api.TravelTransaction, len(entries))
	for i := range entries {
		apiEntries[i] = mapping.ToApiTravelTransaction(&entries[i])
	}

	response.WriteJSON(w, http.StatusOK, apiEntries)
}

// parseLimit applies the default and rejects values outside [1, MaxLimit].
func parseLimit(w http.ResponseWriter, limit *api.Limit) (int32, bool) {
	if limit == nil {
		return DefaultLimit, true
	}
	if *limit < 1 || *limit > MaxLimit {
		response.WriteError(w, http.StatusBadRequest, CodeInvalidLimit, "limit must be between 1 and 100")
		return 0, false
	}
	return int32(*limit), true
}

func writeLookupError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	if errors.Is(err, storage.ErrNotFound) {
		response.WriteError(w, http.StatusNotFound, code, message)
		return
	}
	log := logger.FromContext(r.Context())
	log.Error().Err(err).Msg("failed to load store")
	response.WriteInternalError(w)
}
