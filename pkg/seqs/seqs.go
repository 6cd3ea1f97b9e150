// Package seqs provides short-circuiting search over pull iterators.
package seqs

// Next is a pull iterator: each call yields the next element and true, or a
// zero value and false once the sequence is exhausted.
type Next[T any] func() (T, bool)

// FromSlice returns an iterator over the elements of s.
func FromSlice[T any](s []T) Next[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	}
}

// Find scans next and returns the first element pred accepts. It stops
// consuming the iterator as soon as a match is found; absence is reported
// as (zero, false).
func Find[T any](next Next[T], pred func(T) bool) (T, bool) {
	v, ok, _ := TryFind(next, func(v T) (bool, error) {
		return pred(v), nil
	})
	return v, ok
}

// TryFind is Find with a predicate that can fail. The scan stops at the
// first match or the first predicate error, whichever comes first; elements
// after the stopping point are never consumed.
func TryFind[T any](next Next[T], pred func(T) (bool, error)) (T, bool, error) {
	for {
		v, ok := next()
		if !ok {
			var zero T
			return zero, false, nil
		}
		match, err := pred(v)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if match {
			return v, true, nil
		}
	}
}
