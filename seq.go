package fnkit

import (
	"iter"
)

// The functions in this file build lazy sequences. Nothing is computed when
// a sequence is built; values are produced one at a time as the consumer
// ranges over the result, and the upstream sequence stops being pulled as
// soon as the consumer stops.

// MapSeq returns a sequence producing fn(x) for each x of seq.
func MapSeq[In, Out any](seq iter.Seq[In], fn MapFunc[In, Out]) iter.Seq[Out] {
	if fn == nil {
		panic(nilFunc("MapSeq"))
	}
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(fn(in)) {
				return
			}
		}
	}
}

// FilterSeq returns a sequence that yields only the values of seq for which
// predicate returns true.
func FilterSeq[T any](seq iter.Seq[T], predicate Predicate[T]) iter.Seq[T] {
	if predicate == nil {
		panic(nilFunc("FilterSeq"))
	}
	return func(yield func(T) bool) {
		for in := range seq {
			if predicate(in) {
				if !yield(in) {
					return
				}
			}
		}
	}
}

// Take returns a sequence of at most the first n values of seq. It is the
// usual way to consume a finite prefix of an infinite sequence.
//
// Take panics if n is negative.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n < 0 {
		panic("fnkit.Take: n must not be negative")
	}
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		i := 0
		for in := range seq {
			if !yield(in) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Chunk groups incoming values into slices of the given size.
//
// The final chunk may be smaller than chunkSize. Each chunk has its own
// backing array, so chunks may be retained by the caller.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](seq iter.Seq[T], chunkSize int) iter.Seq[[]T] {
	if chunkSize <= 0 {
		panic("fnkit.Chunk: chunkSize must be positive")
	}

	return func(yield func([]T) bool) {
		accum := make([]T, 0, chunkSize)
		for i := range seq {
			if len(accum) >= chunkSize {
				if !yield(accum) {
					return
				}
				accum = make([]T, 0, chunkSize)
			}

			accum = append(accum, i)
		}

		if len(accum) > 0 {
			yield(accum)
		}
	}
}

// Iterate returns the infinite sequence x, f(x), f(f(x)), ...
func Iterate[T any](x T, f func(T) T) iter.Seq[T] {
	if f == nil {
		panic(nilFunc("Iterate"))
	}
	return func(yield func(T) bool) {
		for v := x; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Repeatedly returns the infinite sequence of values produced by calling
// gen, once per pull.
func Repeatedly[T any](gen func() T) iter.Seq[T] {
	if gen == nil {
		panic(nilFunc("Repeatedly"))
	}
	return func(yield func(T) bool) {
		for {
			if !yield(gen()) {
				return
			}
		}
	}
}

// Collect drains a finite sequence into a slice. Never call it on an
// infinite sequence without bounding it with Take first.
func Collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Pull converts seq into a "pull next" pair: each call to next computes and
// returns the next value, and ok is false once seq is exhausted. stop must be
// called once the caller is done pulling.
func Pull[T any](seq iter.Seq[T]) (next func() (T, bool), stop func()) {
	return iter.Pull(seq)
}
