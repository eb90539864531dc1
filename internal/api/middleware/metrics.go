package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// HTTPObserver интерфейс для записи HTTP метрик
type HTTPObserver interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута,
// чтобы ID в пути не раздували кардинальность
func MetricsMiddleware(observer HTTPObserver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unknown"
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			observer.ObserveHTTPRequest(r.Method, route, strconv.Itoa(rec.status), time.Since(start).Seconds())
		})
	}
}
