/*
Package byteflow provides low-level byte and I/O primitives for Go applications:
background writing, exact splitting, and small OS helpers.

I/O (pkg/ioutil):
  - bgwriter: Background-flush writer that decouples callers from sink latency
  - prefixer: Line-oriented writer that prefixes every output line
  - redissink: Redis-backed sink for background writers
  - rw: Read and seek helpers

Splitting (pkg/splitn):
  - Exact-arity forward and reverse splitting of strings and byte slices

Sequences (pkg/seqs):
  - Short-circuiting search over pull iterators

OS helpers (pkg/osutil):
  - fdup: Inheritable file descriptor and handle duplication

Example usage:

	import (
		"os"

		"github.com/vnykmshr/byteflow/pkg/ioutil/bgwriter"
		"github.com/vnykmshr/byteflow/pkg/splitn"
	)

	w := bgwriter.New(os.Stdout)
	defer w.Close() // drains and flushes

	w.Write([]byte("user:group:home\n"))

	parts, ok := splitn.String("user:group:home", ":", 3)
	if ok {
		// parts[0] == "user", parts[1] == "group", parts[2] == "home"
	}
*/
package byteflow
