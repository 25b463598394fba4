package response

import (
	"encoding/json"
	"net/http"

	"github.com/chris/travel-payments/pkg/api"
)

const CodeInternal = "INTERNAL_SERVER_ERROR"

// WriteJSON writes data as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes the {code, message} error body.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, api.Error{Code: code, Message: message})
}

// WriteInternalError hides the cause from the client.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
}
