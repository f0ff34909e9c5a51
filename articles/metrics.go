package articles

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "articles_fetch_total",
		Help: "Remote spreadsheet fetch attempts.",
	})
	fetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "articles_fetch_errors_total",
		Help: "Remote spreadsheet fetches that failed.",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "articles_cache_hits_total",
		Help: "Reads served from the in-memory cache.",
	})
	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "articles_fetch_duration_seconds",
		Help:    "Time to fetch and map the article set.",
		Buckets: prometheus.DefBuckets,
	})
)
