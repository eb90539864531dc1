package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Каждый экземпляр использует собственный registry, поэтому New можно вызывать многократно
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingValidations  *prometheus.CounterVec
	BookingMutations    *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validations_total",
			Help:        "Booking validation outcomes",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		BookingMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_mutations_total",
			Help:        "Committed booking store mutations",
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingValidations,
		m.BookingMutations,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта метрик
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordValidation учитывает результат проверки бронирования
func (m *Metrics) RecordValidation(outcome string) {
	if m == nil {
		return
	}
	m.BookingValidations.WithLabelValues(outcome).Inc()
}

// RecordMutation учитывает изменение хранилища бронирований (create/update/remove/cascade)
func (m *Metrics) RecordMutation(operation string) {
	if m == nil {
		return
	}
	m.BookingMutations.WithLabelValues(operation).Inc()
}
