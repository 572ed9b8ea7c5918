package fnkit

import (
	"golang.org/x/exp/constraints"
)

// Predicate represents a test on a value: it returns true when the value
// should be kept.
type Predicate[T any] func(item T) bool

// Filter returns a new slice holding the elements of xs for which predicate
// returns true, in their original order.
//
// xs is never modified. An empty or nil xs yields an empty, non-nil slice.
//
// Filter panics if predicate is nil.
func Filter[T any](predicate Predicate[T], xs []T) []T {
	if predicate == nil {
		panic(nilFunc("Filter"))
	}
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if predicate(x) {
			out = append(out, x)
		}
	}
	return out
}

// IsA returns a predicate that reports whether a dynamically typed value
// holds a T.
//
// For example, keeping only the integers of a mixed slice:
//
//	fnkit.Filter(fnkit.IsA[int](), []any{0, "1", 2, nil}) // [0 2]
//
// A nil value is never of type T, even when T is an interface type.
func IsA[T any]() Predicate[any] {
	return func(x any) bool {
		_, ok := x.(T)
		return ok && x != nil
	}
}

// Not negates predicate.
func Not[T any](predicate Predicate[T]) Predicate[T] {
	if predicate == nil {
		panic(nilFunc("Not"))
	}
	return func(x T) bool {
		return !predicate(x)
	}
}

// And returns a predicate that holds when every one of predicates holds.
// With no predicates it always holds.
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	for _, p := range predicates {
		if p == nil {
			panic(nilFunc("And"))
		}
	}
	return func(x T) bool {
		for _, p := range predicates {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that holds when at least one of predicates holds.
// With no predicates it never holds.
func Or[T any](predicates ...Predicate[T]) Predicate[T] {
	for _, p := range predicates {
		if p == nil {
			panic(nilFunc("Or"))
		}
	}
	return func(x T) bool {
		for _, p := range predicates {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// GreaterThan returns the predicate x > n.
func GreaterThan[T constraints.Ordered](n T) Predicate[T] {
	return func(x T) bool {
		return x > n
	}
}

// IsEven reports whether x is divisible by two.
func IsEven[T constraints.Integer](x T) bool {
	return x%2 == 0
}
