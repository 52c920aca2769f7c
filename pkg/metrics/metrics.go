package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик шлюза
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	integrationCallsTotal   *prometheus.CounterVec
	integrationCallDuration *prometheus.HistogramVec

	submissionOutcomesTotal *prometheus.CounterVec

	dbConnections *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_http_requests_total",
				Help: "Total HTTP requests handled by the gateway",
			},
			[]string{"service", "method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_http_request_duration_seconds",
				Help:    "Duration of HTTP requests handled by the gateway",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "route"},
		),
		integrationCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_integration_calls_total",
				Help: "Outbound calls to backend services",
			},
			[]string{"service", "target", "operation", "result"}, // ok|rejected|unavailable
		),
		integrationCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_integration_call_duration_seconds",
				Help:    "Duration of outbound calls to backend services",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "target", "operation"},
		),
		submissionOutcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_submission_outcomes_total",
				Help: "Booking submissions by operation and outcome",
			},
			[]string{"service", "operation", "outcome"},
		),
		dbConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gateway_db_connections",
				Help: "Postgres pool connections by state",
			},
			[]string{"service", "state"}, // open|in_use|idle
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.integrationCallsTotal,
		m.integrationCallDuration,
		m.submissionOutcomesTotal,
		m.dbConnections,
	)

	return m
}

// ObserveHTTP фиксирует обработанный входящий запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(elapsed.Seconds())
}

// ObserveIntegration фиксирует исходящий вызов к внешнему сервису
func (m *Metrics) ObserveIntegration(target, operation, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.integrationCallsTotal.WithLabelValues(m.serviceName, target, operation, result).Inc()
	m.integrationCallDuration.WithLabelValues(m.serviceName, target, operation).Observe(elapsed.Seconds())
}

// RecordOutcome фиксирует итог отправки бронирования
func (m *Metrics) RecordOutcome(operation, outcome string) {
	if m == nil {
		return
	}
	m.submissionOutcomesTotal.WithLabelValues(m.serviceName, operation, outcome).Inc()
}

// SetDBPool фиксирует текущее состояние пула соединений Postgres
func (m *Metrics) SetDBPool(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}
