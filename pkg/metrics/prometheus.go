package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal     *prometheus.CounterVec
	fetchErrorsTotal *prometheus.CounterVec
	quotesCollected  *prometheus.CounterVec
	cacheReads       *prometheus.CounterVec
	fallbacksTotal   prometheus.Counter
	lastPrice        *prometheus.GaugeVec
	cycleDuration    prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sawitfeed_source_fetches_total",
				Help: "Total number of fetch attempts per source",
			},
			[]string{"source"},
		),
		fetchErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sawitfeed_source_fetch_errors_total",
				Help: "Total number of failed fetch attempts per source",
			},
			[]string{"source"},
		),
		quotesCollected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sawitfeed_quotes_collected_total",
				Help: "Total number of raw quotes collected per source",
			},
			[]string{"source"},
		),
		cacheReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sawitfeed_cache_reads_total",
				Help: "Snapshot cache reads by outcome",
			},
			[]string{"outcome"},
		),
		fallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sawitfeed_fallback_activations_total",
				Help: "Number of aggregation cycles served from fallback data",
			},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sawitfeed_last_price_rupiah",
				Help: "Last validated price per region",
			},
			[]string{"region"},
		),
		cycleDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sawitfeed_aggregation_cycle_duration_seconds",
				Help:    "Duration of full aggregation cycles in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// RecordFetch records a fetch attempt against a source.
func (r *Recorder) RecordFetch(source string) {
	r.fetchesTotal.WithLabelValues(source).Inc()
}

// RecordFetchError records a failed fetch attempt.
func (r *Recorder) RecordFetchError(source string) {
	r.fetchErrorsTotal.WithLabelValues(source).Inc()
}

// RecordQuotes records raw quotes collected from a source.
func (r *Recorder) RecordQuotes(source string, n int) {
	r.quotesCollected.WithLabelValues(source).Add(float64(n))
}

// RecordCacheHit records a fresh cache read.
func (r *Recorder) RecordCacheHit() {
	r.cacheReads.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a stale or empty cache read.
func (r *Recorder) RecordCacheMiss() {
	r.cacheReads.WithLabelValues("miss").Inc()
}

// RecordFallback records a cycle that degraded to fallback data.
func (r *Recorder) RecordFallback() {
	r.fallbacksTotal.Inc()
}

// RecordLastPrice records the last validated price for a region.
func (r *Recorder) RecordLastPrice(region string, price float64) {
	r.lastPrice.WithLabelValues(region).Set(price)
}

// RecordCycleDuration records aggregation cycle latency in seconds.
func (r *Recorder) RecordCycleDuration(seconds float64) {
	r.cycleDuration.Observe(seconds)
}
