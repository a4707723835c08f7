package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"virtual-pet/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRequestLog_WritesStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Output: &buf})

	h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pet not found", http.StatusNotFound)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/x", nil))

	line := buf.String()
	for _, want := range []string{"level=warn", "status=404", "path=/pets/x", "request_id="} {
		assert.Contains(t, line, want)
	}
}
