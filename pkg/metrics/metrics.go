package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках код не проверяет флаг.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	quotes   *prometheus.CounterVec
	bookings *prometheus.CounterVec
	coupons  *prometheus.CounterVec

	dbQueries       *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge
	dbWaitCount     prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_quotes_total",
			Help:        "Quotes computed, by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created, by payment type",
			ConstLabels: labels,
		}, []string{"payment_type"}),
		coupons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "coupon_evaluations_total",
			Help:        "Coupon evaluations, by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		dbQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Database queries, by operation and status",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.quotes,
		m.bookings,
		m.coupons,
		m.dbQueries,
		m.dbQueryDuration,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncQuote учитывает расчет стоимости: ok или причина отказа
func (m *Metrics) IncQuote(outcome string) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(outcome).Inc()
}

// IncBookingCreated учитывает созданное бронирование
func (m *Metrics) IncBookingCreated(paymentType string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(paymentType).Inc()
}

// IncCouponOutcome учитывает результат применения промокода
func (m *Metrics) IncCouponOutcome(outcome string) {
	if m == nil {
		return
	}
	m.coupons.WithLabelValues(outcome).Inc()
}

// ObserveDBQuery учитывает запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueries.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет показатели пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
	m.dbIdleConns.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}
