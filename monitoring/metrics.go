// Package monitoring exposes the service's Prometheus metrics.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Prediction metrics
	PredictionRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightdelay_prediction_requests_total",
		Help: "Total number of prediction requests",
	})
	PredictedFlights = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightdelay_predicted_flights_total",
		Help: "Total flights scored across all prediction requests",
	})
	ValidationRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightdelay_validation_rejections_total",
		Help: "Prediction requests rejected by input validation",
	}, []string{"field"})
	PredictionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightdelay_prediction_errors_total",
		Help: "Prediction requests failed by internal errors",
	})
	PredictionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightdelay_prediction_latency_seconds",
		Help:    "Prediction request latency",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})

	// Cache metrics
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightdelay_prediction_cache_hits_total",
		Help: "Single-flight predictions served from the LRU cache",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightdelay_prediction_cache_misses_total",
		Help: "Single-flight predictions computed by the model",
	})

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightdelay_http_requests_total",
		Help: "Total HTTP requests by path and status",
	}, []string{"path", "status"})
	HTTPLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightdelay_http_latency_seconds",
		Help:    "HTTP request latency",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
)
