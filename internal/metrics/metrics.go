package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)

	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed.",
		},
	)

	// CouponValidations counts coupon checks by outcome ("accepted" or a rejection code).
	CouponValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_coupon_validations_total",
			Help: "Coupon validations by outcome.",
		},
		[]string{"outcome"},
	)

	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Orders that reached PENDING or were settled at zero price.",
		},
	)

	LicensesDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_license_deliveries_total",
			Help: "License key delivery attempts by result.",
		},
		[]string{"result"},
	)

	CatalogCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_cache_total",
			Help: "Catalog cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Middleware serves requests through mux and labels them with the route
// pattern that matched, so ids never end up in label values.
func Middleware(mux *http.ServeMux) http.Handler {
	return promhttp.InstrumentHandlerInFlight(httpRequestsInFlight,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			_, pattern := mux.Handler(r)
			if pattern == "" {
				pattern = unmatchedRoute
			}

			route := prometheus.Labels{"path": pattern}

			promhttp.InstrumentHandlerDuration(httpRequestsDuration.MustCurryWith(route),
				promhttp.InstrumentHandlerCounter(httpRequestsTotal.MustCurryWith(route), mux),
			).ServeHTTP(w, r)
		}))
}

// Handler serves the default registry, which includes the Go and process collectors.
func Handler() http.Handler {
	return promhttp.Handler()
}
