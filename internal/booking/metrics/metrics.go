package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeSuccess = "success"

// Metrics provides observability for the booking module.
// Tracks workflow outcomes by error code, registration latency and listing cache efficiency.
type Metrics struct {
	Registrations        *prometheus.CounterVec
	Deletions            *prometheus.CounterVec
	RegistrationDuration prometheus.Histogram
	ListingDuration      prometheus.Histogram
	ListingCache         *prometheus.CounterVec
}

// New registers the booking metrics with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tripapp_registrations_total",
			Help: "Registration attempts by outcome (success or error code)",
		}, []string{"outcome"}),
		Deletions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tripapp_client_deletions_total",
			Help: "Client deletion attempts by outcome (success or error code)",
		}, []string{"outcome"}),
		RegistrationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripapp_registration_duration_seconds",
			Help:    "Duration of RegisterClientForTrip including the commit",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ListingDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripapp_trip_listing_duration_seconds",
			Help:    "Duration of trip listing operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ListingCache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tripapp_trip_listing_cache_total",
			Help: "Trip listing cache lookups by result (hit or miss)",
		}, []string{"result"}),
	}
}

// ObserveRegistration records one registration attempt.
// Call with time.Now() at the start of the operation and the error code, or "" on success.
func (m *Metrics) ObserveRegistration(start time.Time, code string) {
	m.RegistrationDuration.Observe(time.Since(start).Seconds())
	m.Registrations.WithLabelValues(outcome(code)).Inc()
}

// IncrementDeletion records one deletion attempt.
func (m *Metrics) IncrementDeletion(code string) {
	m.Deletions.WithLabelValues(outcome(code)).Inc()
}

// ObserveListing records the duration of a listing operation.
func (m *Metrics) ObserveListing(start time.Time) {
	m.ListingDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementCacheHit() {
	m.ListingCache.WithLabelValues("hit").Inc()
}

func (m *Metrics) IncrementCacheMiss() {
	m.ListingCache.WithLabelValues("miss").Inc()
}

func outcome(code string) string {
	if code == "" {
		return outcomeSuccess
	}
	return code
}
