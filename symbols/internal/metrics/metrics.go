package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockservers_symbols_requests_total",
			Help: "Total number of symbol API requests by endpoint",
		},
		[]string{"endpoint"},
	)

	AssembledFilesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_symbols_assembled_files_total",
			Help: "Total number of debug files reported as assembled",
		},
	)

	ChunksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_symbols_chunks_total",
			Help: "Total number of chunks referenced by assemble requests",
		},
	)

	RegistryErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockservers_symbols_registry_errors_total",
			Help: "Total number of uploads that could not be registered",
		},
	)
)
