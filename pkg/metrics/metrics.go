package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	OvertimeTotal       prometheus.Counter
	QueueLength         prometheus.Gauge
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		OvertimeTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "service_overtime_total",
				Help:        "Total number of services that ran past their planned end",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
		QueueLength: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "queue_length",
				Help:        "Current number of waiting clients",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.OvertimeTotal,
		m.QueueLength,
	)

	return m
}
