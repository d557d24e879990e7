package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	RejectInvalidJSON   = "invalid_json"
	RejectMissingFields = "missing_fields"
	RejectInvalidEmail  = "invalid_email"
	RejectInternal      = "internal"
	RejectRateLimited   = "rate_limited"

	DispatchSent           = "sent"
	DispatchFailed         = "failed"
	DispatchSkippedNoEmail = "skipped_no_email"
	DispatchSkippedNoKey   = "skipped_no_key"
)

// Metrics holds the service collectors. Each instance owns its registry so
// tests can build as many servers as they like.
type Metrics struct {
	Registry *prometheus.Registry

	BookingsCreated   prometheus.Counter
	BookingRejections *prometheus.CounterVec
	EmailDispatch     *prometheus.CounterVec
	BookingsStored    prometheus.Gauge
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "stefan_bookings_created_total",
			Help: "Total number of bookings accepted",
		}),

		BookingRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stefan_booking_rejections_total",
			Help: "Booking submissions rejected, by reason",
		}, []string{"reason"}),

		EmailDispatch: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stefan_email_dispatch_total",
			Help: "Confirmation email outcomes",
		}, []string{"result"}),

		BookingsStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stefan_bookings_stored",
			Help: "Bookings currently held in memory",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stefan_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stefan_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
