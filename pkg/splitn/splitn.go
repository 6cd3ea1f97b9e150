package splitn

import (
	"bytes"
	"strings"
)

// collect materializes exactly n pieces from a lazy splitting iterator.
// Forward iterators fill slots 0..n-1 in production order; reverse iterators
// produce pieces end-to-start, so they fill slots n-1..0 and slot 0 still
// ends up holding the leftmost piece. If the iterator runs dry before every
// slot is written the partial result is discarded and absence is reported.
func collect[T any](n int, reversed bool, next func() (T, bool)) ([]T, bool) {
	if n == 0 {
		return []T{}, true
	}
	if n < 0 {
		return nil, false
	}

	out := make([]T, n)
	if reversed {
		for i := n - 1; i >= 0; i-- {
			v, ok := next()
			if !ok {
				return nil, false
			}
			out[i] = v
		}
	} else {
		for i := 0; i < n; i++ {
			v, ok := next()
			if !ok {
				return nil, false
			}
			out[i] = v
		}
	}
	return out, true
}

// forward returns a lazy splitter that yields at most n pieces of s, cutting
// at sep from the left; the final piece absorbs the remainder. index and cut
// abstract over string/[]byte and separator kinds.
func forward[T any](s T, n int, index func(T) int, cut func(T, int) (T, T)) func() (T, bool) {
	rest := s
	remaining := n
	done := false
	return func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		if remaining > 1 {
			if i := index(rest); i >= 0 {
				var piece T
				piece, rest = cut(rest, i)
				remaining--
				return piece, true
			}
		}
		done = true
		return rest, true
	}
}

// reverse is the right-to-left counterpart of forward; pieces are yielded
// end-to-start.
func reverse[T any](s T, n int, lastIndex func(T) int, cut func(T, int) (T, T)) func() (T, bool) {
	rest := s
	remaining := n
	done := false
	return func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		if remaining > 1 {
			if i := lastIndex(rest); i >= 0 {
				var piece T
				rest, piece = cut(rest, i)
				remaining--
				return piece, true
			}
		}
		done = true
		return rest, true
	}
}

// String splits s around sep into exactly n pieces, cutting at the first
// n-1 occurrences; the last piece absorbs the remainder. It reports absence
// when s contains fewer than n-1 occurrences of sep, and the pieces alias s.
// sep must be non-empty.
func String(s, sep string, n int) ([]string, bool) {
	if n != 0 && sep == "" {
		return nil, false
	}
	return collect(n, false, forward(s, n,
		func(s string) int { return strings.Index(s, sep) },
		func(s string, i int) (string, string) { return s[:i], s[i+len(sep):] },
	))
}

// RString is like String but cuts at the last n-1 occurrences of sep.
// Pieces are still returned in left-to-right order.
func RString(s, sep string, n int) ([]string, bool) {
	if n != 0 && sep == "" {
		return nil, false
	}
	return collect(n, true, reverse(s, n,
		func(s string) int { return strings.LastIndex(s, sep) },
		func(s string, i int) (string, string) { return s[:i], s[i+len(sep):] },
	))
}

// Bytes splits b around the multi-byte delimiter sep into exactly n pieces.
// The pieces alias b; sep must be non-empty.
func Bytes(b, sep []byte, n int) ([][]byte, bool) {
	if n != 0 && len(sep) == 0 {
		return nil, false
	}
	return collect(n, false, forward(b, n,
		func(b []byte) int { return bytes.Index(b, sep) },
		func(b []byte, i int) ([]byte, []byte) { return b[:i], b[i+len(sep):] },
	))
}

// RBytes is like Bytes but cuts at the last n-1 occurrences of sep.
func RBytes(b, sep []byte, n int) ([][]byte, bool) {
	if n != 0 && len(sep) == 0 {
		return nil, false
	}
	return collect(n, true, reverse(b, n,
		func(b []byte) int { return bytes.LastIndex(b, sep) },
		func(b []byte, i int) ([]byte, []byte) { return b[:i], b[i+len(sep):] },
	))
}

// Byte splits b around the single byte c into exactly n pieces.
func Byte(b []byte, c byte, n int) ([][]byte, bool) {
	return collect(n, false, forward(b, n,
		func(b []byte) int { return bytes.IndexByte(b, c) },
		func(b []byte, i int) ([]byte, []byte) { return b[:i], b[i+1:] },
	))
}

// RByte is like Byte but cuts at the last n-1 occurrences of c.
func RByte(b []byte, c byte, n int) ([][]byte, bool) {
	return collect(n, true, reverse(b, n,
		func(b []byte) int { return bytes.LastIndexByte(b, c) },
		func(b []byte, i int) ([]byte, []byte) { return b[:i], b[i+1:] },
	))
}

// BytesFunc splits b into exactly n pieces, cutting at bytes matched by f.
func BytesFunc(b []byte, f func(byte) bool, n int) ([][]byte, bool) {
	return collect(n, false, forward(b, n,
		func(b []byte) int { return indexFunc(b, f) },
		func(b []byte, i int) ([]byte, []byte) { return b[:i], b[i+1:] },
	))
}

// RBytesFunc is like BytesFunc but cuts at the last n-1 matching bytes.
func RBytesFunc(b []byte, f func(byte) bool, n int) ([][]byte, bool) {
	return collect(n, true, reverse(b, n,
		func(b []byte) int { return lastIndexFunc(b, f) },
		func(b []byte, i int) ([]byte, []byte) { return b[:i], b[i+1:] },
	))
}

func indexFunc(b []byte, f func(byte) bool) int {
	for i, c := range b {
		if f(c) {
			return i
		}
	}
	return -1
}

func lastIndexFunc(b []byte, f func(byte) bool) int {
	for i := len(b) - 1; i >= 0; i-- {
		if f(b[i]) {
			return i
		}
	}
	return -1
}
