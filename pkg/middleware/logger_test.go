package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/travel-payments/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestNewStructuredLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(NewStructuredLogger(logger.NewWithWriter(buf)))
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		log.Info().Msg("inside handler")
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	t.Run("Request Completed", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-Id", "req-42")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		out := buf.String()
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, out, `"message":"inside handler"`)
		assert.Contains(t, out, `"message":"request completed"`)
		assert.Contains(t, out, `"request_id":"req-42"`)
		assert.Contains(t, out, `"status":200`)
	})

	t.Run("Server Error", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Contains(t, buf.String(), `"level":"error"`)
		assert.Contains(t, buf.String(), `"message":"server error"`)
	})
}
