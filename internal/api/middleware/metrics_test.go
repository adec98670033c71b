package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeMetrics struct {
	observed []observation
}

func (f *fakeMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/apartments/{apartmentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apartments/42", nil))

	require.Len(t, m.observed, 1)
	assert.Equal(t, observation{method: http.MethodGet, route: "/apartments/{apartmentId}", status: http.StatusNotFound}, m.observed[0])
}

func TestTimeout_SetsDeadline(t *testing.T) {
	var hasDeadline bool
	h := Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, hasDeadline)
}
