package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CateringService/pkg/logger"
	"github.com/m04kA/SMC-CateringService/pkg/metrics"
)

type staticChecker bool

func (c staticChecker) IsAuthenticated(context.Context) bool { return bool(c) }

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func TestRequireLogin(t *testing.T) {
	tests := []struct {
		name     string
		loggedIn bool
		status   int
	}{
		{"logged in", true, http.StatusNoContent},
		{"logged out", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RequireLogin(staticChecker(tt.loggedIn), logger.NewNop())(http.HandlerFunc(okHandler))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test")
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{ref}", okHandler).Methods(http.MethodDelete)

	for _, target := range []string{"/api/v1/bookings/1", "/api/v1/bookings/abc"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, target, nil))
	}

	count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/api/v1/bookings/{ref}", "204"))
	assert.Equal(t, float64(2), count)
}
