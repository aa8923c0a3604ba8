package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// track service.
type Metrics struct {
	Extractions         *prometheus.CounterVec // labels: dataset, outcome={ok,empty,not_found}
	ObservationsDropped *prometheus.CounterVec // labels: reason={position,wind,pressure}
	ExtractionDuration  prometheus.Histogram
	TrackLength         prometheus.Histogram

	CacheLookups *prometheus.CounterVec // labels: tier={memory,store}, result={hit,miss}

	TracksPublished prometheus.Counter
	PublishErrors   prometheus.Counter

	DatasetsLoaded prometheus.Gauge
	ServiceUp      prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cyclone_tracks",
			Name:      "extractions_total",
			Help:      "Track extraction calls by dataset and outcome.",
		}, []string{"dataset", "outcome"}),
		ObservationsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cyclone_tracks",
			Name:      "observations_dropped_total",
			Help:      "Observation candidates removed by validity filtering, by failing field.",
		}, []string{"reason"}),
		ExtractionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cyclone_tracks",
			Name:      "extraction_duration_seconds",
			Help:      "Duration of one extract call, match through sort.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		TrackLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cyclone_tracks",
			Name:      "track_length_observations",
			Help:      "Observations per returned track.",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 200, 400},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cyclone_tracks",
			Name:      "cache_lookups_total",
			Help:      "Track cache lookups by tier and result.",
		}, []string{"tier", "result"}),
		TracksPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cyclone_tracks",
			Name:      "tracks_published_total",
			Help:      "Tracks written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cyclone_tracks",
			Name:      "publish_errors_total",
			Help:      "Failed sink topic writes.",
		}),
		DatasetsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cyclone_tracks",
			Name:      "datasets_loaded",
			Help:      "Number of registered datasets.",
		}),
		ServiceUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cyclone_tracks",
			Name:      "service_up",
			Help:      "1 while the service is running, 0 after shutdown.",
		}),
	}

	prometheus.MustRegister(
		m.Extractions,
		m.ObservationsDropped,
		m.ExtractionDuration,
		m.TrackLength,
		m.CacheLookups,
		m.TracksPublished,
		m.PublishErrors,
		m.DatasetsLoaded,
		m.ServiceUp,
	)

	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry, avoiding "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Extractions:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "cyclone_tracks", Name: "extractions_total"}, []string{"dataset", "outcome"}),
		ObservationsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "cyclone_tracks", Name: "observations_dropped_total"}, []string{"reason"}),
		ExtractionDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "cyclone_tracks", Name: "extraction_duration_seconds"}),
		TrackLength:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "cyclone_tracks", Name: "track_length_observations"}),
		CacheLookups:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "cyclone_tracks", Name: "cache_lookups_total"}, []string{"tier", "result"}),
		TracksPublished:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cyclone_tracks", Name: "tracks_published_total"}),
		PublishErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cyclone_tracks", Name: "publish_errors_total"}),
		DatasetsLoaded:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "cyclone_tracks", Name: "datasets_loaded"}),
		ServiceUp:           prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "cyclone_tracks", Name: "service_up"}),
	}
}
