package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Envelope intake
	EnvelopesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_envelopes_total",
			Help: "Total number of envelopes received",
		},
		[]string{"status"},
	)

	EnvelopeBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_bytes_total",
			Help: "Total bytes of raw envelope data received",
		},
	)

	DecompressionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_decompression_failures_total",
			Help: "Total number of gzip envelopes that failed to decompress",
		},
	)

	// Decoding
	ItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_items_total",
			Help: "Total number of envelope items decoded",
		},
	)

	BinaryPayloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_binary_payloads_total",
			Help: "Total number of payloads replaced by a binary placeholder",
		},
	)

	DecodeWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_decode_warnings_total",
			Help: "Total number of headers replaced by an error placeholder",
		},
	)

	DecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mockservers_envelope_decode_duration_seconds",
			Help:    "Duration of envelope decoding in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Storage
	StorageErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_storage_errors_total",
			Help: "Total number of envelopes that could not be stored",
		},
	)

	NotifyErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_envelope_notify_errors_total",
			Help: "Total number of saved-envelope events that could not be published",
		},
	)
)
