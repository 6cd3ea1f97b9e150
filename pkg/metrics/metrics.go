// Package metrics provides Prometheus instrumentation for byteflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for byteflow components.
type Registry struct {
	// Background writer metrics
	WriterBytesAccepted *prometheus.CounterVec
	WriterBytesWritten  *prometheus.CounterVec
	WriterFlushes       *prometheus.CounterVec
	WriterErrors        *prometheus.CounterVec
	WriterQueueDepth    *prometheus.GaugeVec

	// Sink metrics
	SinkPushes     *prometheus.CounterVec
	SinkPushErrors *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by byteflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		WriterBytesAccepted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "byteflow",
				Subsystem: "writer",
				Name:      "bytes_accepted_total",
				Help:      "Total bytes accepted for background writing",
			},
			[]string{"writer_name"},
		),

		WriterBytesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "byteflow",
				Subsystem: "writer",
				Name:      "bytes_written_total",
				Help:      "Total bytes written to the underlying sink",
			},
			[]string{"writer_name"},
		),

		WriterFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "byteflow",
				Subsystem: "writer",
				Name:      "flushes_total",
				Help:      "Total number of sink flushes",
			},
			[]string{"writer_name"},
		),

		WriterErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "byteflow",
				Subsystem: "writer",
				Name:      "errors_total",
				Help:      "Total number of sink write or flush errors",
			},
			[]string{"writer_name"},
		),

		WriterQueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "byteflow",
				Subsystem: "writer",
				Name:      "queue_depth",
				Help:      "Number of buffers currently queued for writing",
			},
			[]string{"writer_name"},
		),

		SinkPushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "byteflow",
				Subsystem: "sink",
				Name:      "pushes_total",
				Help:      "Total number of buffers pushed to a remote sink",
			},
			[]string{"sink_name"},
		),

		SinkPushErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "byteflow",
				Subsystem: "sink",
				Name:      "push_errors_total",
				Help:      "Total number of failed pushes to a remote sink",
			},
			[]string{"sink_name"},
		),
	}
}
