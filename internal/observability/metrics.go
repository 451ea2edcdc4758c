package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylesnap",
		Name:      "cache_hits_total",
		Help:      "Total number of response cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylesnap",
		Name:      "cache_misses_total",
		Help:      "Total number of response cache misses",
	})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stylesnap",
		Name:      "upstream_requests_total",
		Help:      "Total number of vendor API requests",
	}, []string{"vendor", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stylesnap",
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of vendor API requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"vendor"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stylesnap",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	DetectionsReturned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylesnap",
		Name:      "detections_returned_total",
		Help:      "Total number of clothing detections returned to clients",
	})
)
