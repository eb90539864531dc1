package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/testfixtures"
)

type directory map[string]bool

func (d directory) Exists(_ context.Context, id string) (bool, error) {
	if id == "broken" {
		return false, errors.New("directory unavailable")
	}
	return d[id], nil
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(userID))
}

func TestAuth(t *testing.T) {
	handler := Auth(directory{"u1": true, "u2": true}, "u1", testfixtures.Logger())(http.HandlerFunc(echoUser))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "default user", wantStatus: http.StatusOK, wantBody: "u1"},
		{name: "header user", header: "u2", wantStatus: http.StatusOK, wantBody: "u2"},
		{name: "unknown user", header: "u9", wantStatus: http.StatusUnauthorized},
		{name: "directory error", header: "broken", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/bookings", nil)
			if tt.header != "" {
				r.Header.Set(HeaderUserID, tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	_, ok := GetUserID(context.Background())
	assert.False(t, ok)
}

type observation struct {
	method, route, status string
}

type observer struct {
	mu   sync.Mutex
	seen []observation
}

func (o *observer) ObserveHTTPRequest(method, route, status string, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	obs := &observer{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(obs))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b42", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observation{method: "GET", route: "/api/v1/bookings/{bookingId}", status: "404"}, obs.seen[0])
}
