package bgwriter

import (
	"io"
	"sync"

	"github.com/eapache/queue"
)

// Writer provides background writing to a single sink. Write hands the data
// to a dedicated worker goroutine and returns immediately; the worker owns
// the sink exclusively and writes queued buffers in strict FIFO order.
type Writer interface {
	// Write copies p, queues it for the worker, and returns len(p) without
	// waiting for the sink. After Close has begun it accepts nothing and
	// returns 0, nil.
	Write(p []byte) (int, error)

	// Flush is a no-op; the only write barrier is Close. Data queued before
	// Close is guaranteed to reach the sink by the time Close returns.
	Flush() error

	// Close stops accepting writes, waits for the worker to drain the queue
	// and flush the sink, and returns the first sink error encountered.
	// The error is reported exactly once; later calls return nil.
	Close() error

	// Stats returns counters describing the writer's activity so far.
	Stats() Stats
}

// Flusher is implemented by sinks that buffer internally and support an
// explicit flush. The worker flushes such sinks once, after draining the
// queue during Close.
type Flusher interface {
	Flush() error
}

// Stats holds counters for a background writer.
type Stats struct {
	// WriteCount is the number of accepted Write calls.
	WriteCount int64

	// BytesAccepted is the total number of bytes accepted by Write.
	BytesAccepted int64

	// BytesWritten is the total number of bytes the worker has written
	// to the sink.
	BytesWritten int64

	// QueueDepth is the number of buffers currently waiting for the worker.
	QueueDepth int
}

// Config holds configuration options for a background writer.
type Config struct {
	// OnError is called from the worker goroutine when the sink first
	// fails. The same error is still returned from Close; the hook only
	// provides earlier visibility.
	OnError func(error)
}

// bgWriter implements Writer with a mutex-guarded unbounded FIFO handed to
// a single worker goroutine.
type bgWriter struct {
	mu     sync.Mutex
	cond   *sync.Cond
	fifo   *queue.Queue // of []byte
	closed bool

	writeCount    int64
	bytesAccepted int64
	bytesWritten  int64

	done chan struct{}
	err  error // worker's first sink error, readable once done is closed

	onError func(error)
}

// New creates a background writer around sink and starts its worker.
// The sink must not be used by anyone else until Close returns.
func New(sink io.Writer) Writer {
	return NewWithConfig(sink, Config{})
}

// NewWithConfig creates a background writer with the given configuration.
func NewWithConfig(sink io.Writer, config Config) Writer {
	w := &bgWriter{
		fifo:    queue.New(),
		done:    make(chan struct{}),
		onError: config.OnError,
	}
	w.cond = sync.NewCond(&w.mu)

	go w.run(sink)

	return w
}

// Write implements Writer.Write.
func (w *bgWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, nil
	}

	buf := make([]byte, len(p))
	copy(buf, p)
	w.fifo.Add(buf)

	w.writeCount++
	w.bytesAccepted += int64(len(p))

	w.cond.Signal()
	return len(p), nil
}

// Flush implements Writer.Flush.
func (w *bgWriter) Flush() error {
	return nil
}

// Close implements Writer.Close.
func (w *bgWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		// Another caller already closed; the worker's error belongs to them.
		<-w.done
		return nil
	}
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()

	<-w.done
	return w.err
}

// Stats implements Writer.Stats.
func (w *bgWriter) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Stats{
		WriteCount:    w.writeCount,
		BytesAccepted: w.bytesAccepted,
		BytesWritten:  w.bytesWritten,
		QueueDepth:    w.fifo.Length(),
	}
}

// run is the worker goroutine. It drains the queue in FIFO order, writing
// each buffer to the sink until the first error, then keeps draining without
// writing so Close can observe a clean shutdown. The sink is flushed once,
// after the queue is closed and empty.
func (w *bgWriter) run(sink io.Writer) {
	var err error
	for {
		buf, ok := w.next()
		if !ok {
			break
		}
		if err != nil {
			continue
		}
		if _, werr := sink.Write(buf); werr != nil {
			err = werr
			if w.onError != nil {
				w.onError(err)
			}
			continue
		}
		w.mu.Lock()
		w.bytesWritten += int64(len(buf))
		w.mu.Unlock()
	}

	if err == nil {
		if f, ok := sink.(Flusher); ok {
			if ferr := f.Flush(); ferr != nil {
				err = ferr
				if w.onError != nil {
					w.onError(err)
				}
			}
		}
	}

	w.err = err
	close(w.done)
}

// next blocks until a buffer is queued or the writer is closed and drained.
func (w *bgWriter) next() ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for w.fifo.Length() == 0 && !w.closed {
		w.cond.Wait()
	}
	if w.fifo.Length() == 0 {
		return nil, false
	}
	return w.fifo.Remove().([]byte), true
}
