// Package metrics provides Prometheus instrumentation for byteflow components.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Background writers (accepted and written bytes, flushes, errors, queue depth)
//   - Remote sinks (pushes, push errors)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Background writer with metrics
//	w := bgwriter.NewWithMetrics(sink, "audit_log")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	w := bgwriter.NewWithConfigAndMetrics(sink, bgwriter.Config{}, "audit_log", config)
//
// # Available Metrics
//
//   - byteflow_writer_bytes_accepted_total: Total bytes accepted for background writing
//   - byteflow_writer_bytes_written_total: Total bytes written to the underlying sink
//   - byteflow_writer_flushes_total: Total number of sink flushes
//   - byteflow_writer_errors_total: Total number of sink write or flush errors
//   - byteflow_writer_queue_depth: Number of buffers currently queued for writing
//   - byteflow_sink_pushes_total: Total number of buffers pushed to a remote sink
//   - byteflow_sink_push_errors_total: Total number of failed pushes to a remote sink
//
// All writer metrics carry a writer_name label and sink metrics a sink_name
// label, so multiple instances can share a registry.
package metrics
