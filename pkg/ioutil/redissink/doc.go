/*
Package redissink provides an io.Writer that appends buffers to a Redis list.

Each Write performs one RPUSH, so buffers arrive intact and in order; a
consumer drains them with LPOP or BLPOP. Flush pings the server, which is
enough of a barrier because RPUSH is durable by the time it returns.

The sink is built to sit behind a background writer, keeping Redis
round-trip latency off the calling goroutine:

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	sink, err := redissink.New(client, "app:audit")
	if err != nil {
		log.Fatal(err)
	}

	w := bgwriter.New(sink)
	defer w.Close()

	w.Write([]byte(`{"event":"login","user":"alice"}`))

The client is accepted through the narrow Cmdable interface, so either a
plain client or a cluster client works, and tests can substitute a fake.
*/
package redissink
