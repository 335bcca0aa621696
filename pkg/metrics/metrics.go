package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DetectionsTotal     *prometheus.CounterVec
	DetectionDuration   *prometheus.HistogramVec
	SectionsPerPage     prometheus.Histogram
	CacheHitsTotal      *prometheus.CounterVec
)

func Init() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "detections_total",
			Help: "Total number of section detection runs.",
		},
		[]string{"status", "source_kind"}, // status: success, failure; source_kind: url, html
	)

	DetectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "detection_duration_seconds",
			Help:    "End-to-end duration of render plus section detection.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"source_kind"},
	)

	SectionsPerPage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sections_per_page",
			Help:    "Number of sections detected per analyzed page.",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_events_total",
			Help: "Result cache lookups by outcome.",
		},
		[]string{"outcome"}, // hit, miss, bypass
	)
}
