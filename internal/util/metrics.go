package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntityWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entity_writes_total",
		Help: "Total number of successful entity writes",
	}, []string{"entity", "op"})

	EntityReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entity_reads_total",
		Help: "Total number of entity reads",
	}, []string{"entity"})

	PhoneConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "customer_phone_conflicts_total",
		Help: "Total number of customer writes rejected for a duplicate phone",
	})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total number of entity cache hits",
	}, []string{"entity"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total number of entity cache misses",
	}, []string{"entity"})

	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entity_events_published_total",
		Help: "Total number of entity events published",
	}, []string{"entity", "action"})

	EventsPublishFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "entity_events_publish_failed_total",
		Help: "Total number of entity event publish failures",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
