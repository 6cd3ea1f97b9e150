/*
Package bgwriter decouples a caller's writes from the latency of the
underlying sink.

Write copies the data, hands it to a dedicated worker goroutine over an
unbounded FIFO queue, and returns immediately. The worker owns the sink
exclusively from construction until Close, writes buffers in exactly the
order they were accepted, and flushes the sink once after draining. Close is
the only synchronization barrier: it blocks until every previously accepted
buffer has reached the sink, and it reports the first sink error exactly
once.

# Quick Start

	file, _ := os.Create("output.log")
	w := bgwriter.New(file)

	w.Write([]byte("line 1\n")) // returns immediately
	w.Write([]byte("line 2\n"))

	if err := w.Close(); err != nil {
		log.Fatal(err) // first write or flush error, if any
	}

# Ordering and Completion

Buffers reach the sink in strict Write order; nothing is reordered,
duplicated, or silently dropped. Close never returns before the queue is
fully drained and the sink flushed, so a nil error from Close means every
accepted byte landed in the sink.

# Failure Semantics

A sink error stops all further writing. The worker keeps consuming queued
buffers so it can terminate cleanly, but discards them; the error surfaces
from Close, once. An optional Config.OnError hook observes the error earlier,
from the worker goroutine. There are no retries; retry policy belongs to the
sink.

	w := bgwriter.NewWithConfig(sink, bgwriter.Config{
		OnError: func(err error) {
			log.Printf("sink failed: %v", err)
		},
	})

# Queue Growth

The handoff queue is unbounded. A producer that is persistently faster than
the sink grows memory without limit; this is a deliberate trade-off in favor
of never blocking the caller. Callers that need flow control should meter
their own writes.

# Monitoring

	w := bgwriter.NewWithMetrics(sink, "audit_log")

exposes accepted/written byte counters, flush and error counters, and a
queue-depth gauge via Prometheus (see pkg/metrics).

# Caller Errors

Writing after Close has begun is a caller error; such writes are accepted
nowhere and report 0 bytes written with a nil error. Flush is always a no-op;
the only barrier is Close.
*/
package bgwriter
