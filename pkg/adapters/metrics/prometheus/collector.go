package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements the prediction and inference metrics using Prometheus
type Collector struct {
	predictions        *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	backendCalls       *prometheus.CounterVec

	predictionDuration prometheus.Histogram
	backendLatency     prometheus.Histogram
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		predictions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraud_predictions_total",
				Help: "Total number of prediction requests by outcome",
			},
			[]string{"outcome"},
		),
		validationFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraud_validation_failures_total",
				Help: "Total number of rejected query parameters by field",
			},
			[]string{"field"},
		),
		backendCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraud_model_calls_total",
				Help: "Total number of model backend calls by HTTP status",
			},
			[]string{"status"},
		),
		predictionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fraud_prediction_duration_seconds",
				Help:    "End-to-end prediction pipeline duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		backendLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fraud_model_call_duration_seconds",
				Help:    "Model backend call duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
	}
}

// RecordPrediction records one completed prediction request
func (c *Collector) RecordPrediction(outcome string, duration time.Duration) {
	c.predictions.WithLabelValues(outcome).Inc()
	c.predictionDuration.Observe(duration.Seconds())
}

// RecordValidationFailure records one rejected query parameter
func (c *Collector) RecordValidationFailure(field string) {
	c.validationFailures.WithLabelValues(field).Inc()
}

// RecordBackendCall records one model backend call
func (c *Collector) RecordBackendCall(status string, duration time.Duration) {
	c.backendCalls.WithLabelValues(status).Inc()
	c.backendLatency.Observe(duration.Seconds())
}
