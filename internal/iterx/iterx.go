// Package iterx holds small helpers for building and draining iter.Seq
// values in tests and in the lesson catalogue.
package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Counting wraps seq and increments *n each time a value is pulled from it.
func Counting[T any](seq iter.Seq[T], n *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			*n++
			if !yield(item) {
				break
			}
		}
	}
}

// Naturals yields 0, 1, 2, ... without end.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
