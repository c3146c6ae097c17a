package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ghcn_etl"

// Metrics holds the Prometheus counters and histograms for reshape runs.
type Metrics struct {
	RecordsDecoded      prometheus.Counter
	StationsProcessed   prometheus.Counter
	SeriesExported      prometheus.Counter
	UnsupportedElements prometheus.Counter
	DuplicateKeys       prometheus.Counter
	NoRecordDays        prometheus.Counter
	RunFailures         prometheus.Counter

	// Per-file processing duration, extract through load.
	RunDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates the reshape metrics on a private registry, so each run
// (and each test) starts from zero.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_decoded_total",
			Help:      "Total station-month records decoded from .dly input.",
		}),
		StationsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stations_processed_total",
			Help:      "Total stations reshaped and exported.",
		}),
		SeriesExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_exported_total",
			Help:      "Total element series written to spreadsheets.",
		}),
		UnsupportedElements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unsupported_elements_total",
			Help:      "Requested element codes skipped because they are not in the GHCN-Daily vocabulary.",
		}),
		DuplicateKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_keys_total",
			Help:      "Year/month/element keys held by more than one record.",
		}),
		NoRecordDays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_record_days_total",
			Help:      "Output days filled with the no-record sentinel.",
		}),
		RunFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "run_failures_total",
			Help:      "Input files whose reshape failed.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete extract-reshape-load run for one input file.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RecordsDecoded,
		m.StationsProcessed,
		m.SeriesExported,
		m.UnsupportedElements,
		m.DuplicateKeys,
		m.NoRecordDays,
		m.RunFailures,
		m.RunDuration,
	)

	return m
}

// WriteTextfile writes the current metric values in the Prometheus text
// format, for collection by a node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
