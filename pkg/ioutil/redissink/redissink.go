package redissink

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	gferrors "github.com/vnykmshr/byteflow/pkg/common/errors"
)

// Cmdable is the subset of the go-redis client the sink needs. *redis.Client
// and *redis.ClusterClient both satisfy it; tests can fake it with
// redis.NewIntResult and redis.NewStatusResult.
type Cmdable interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// Config holds configuration for a Redis sink.
type Config struct {
	// Key is the Redis list each buffer is appended to.
	Key string

	// Timeout bounds each Redis round-trip.
	// Default: 5 seconds.
	Timeout time.Duration
}

// DefaultTimeout bounds Redis round-trips when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Sink is an io.Writer that appends each buffer to a Redis list. Every
// Write is one RPUSH, so buffers stay intact and ordered; a consumer can
// LPOP them off in the order they were written. Sink pairs naturally with
// bgwriter, which moves the Redis round-trip latency off the caller.
type Sink struct {
	client  Cmdable
	key     string
	timeout time.Duration
}

// New creates a Redis sink appending to the given list key.
func New(client Cmdable, key string) (*Sink, error) {
	return NewWithConfig(client, Config{Key: key})
}

// NewWithConfig creates a Redis sink with the given configuration.
func NewWithConfig(client Cmdable, config Config) (*Sink, error) {
	if client == nil {
		return nil, gferrors.NewValidationError("redissink", "client", nil, "cannot be nil")
	}
	if config.Key == "" {
		return nil, gferrors.NewValidationError("redissink", "key", config.Key, "cannot be empty").
			WithHint("provide the Redis list key to append to")
	}
	if config.Timeout < 0 {
		return nil, gferrors.NewValidationError("redissink", "timeout", config.Timeout, "cannot be negative")
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Sink{
		client:  client,
		key:     config.Key,
		timeout: config.Timeout,
	}, nil
}

// Write appends p to the list as a single element.
func (s *Sink) Write(p []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	buf := make([]byte, len(p))
	copy(buf, p)

	if err := s.client.RPush(ctx, s.key, buf).Err(); err != nil {
		return 0, gferrors.NewOperationError("redissink", "Write", err).WithContext("key " + s.key)
	}
	return len(p), nil
}

// Flush forces a server round-trip. RPUSH is already durable on return, so
// a successful ping proves every prior Write reached the server.
func (s *Sink) Flush() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return gferrors.NewOperationError("redissink", "Flush", err)
	}
	return nil
}
