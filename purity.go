package fnkit

import (
	"sync"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Abs returns the absolute value of x. Abs is idempotent:
// Abs(Abs(x)) == Abs(x).
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sorted returns a sorted copy of xs, leaving xs untouched. Sorted is
// idempotent: Sorted(Sorted(xs)) equals Sorted(xs).
func Sorted[T constraints.Ordered](xs []T) []T {
	out := slices.Clone(xs)
	if out == nil {
		out = []T{}
	}
	slices.Sort(out)
	return out
}

// IsIdempotentAt reports whether f(f(x)) == f(x).
func IsIdempotentAt[T comparable](f func(T) T, x T) bool {
	once := f(x)
	return f(once) == once
}

// IsIdempotentSliceAt is IsIdempotentAt for functions over slices.
func IsIdempotentSliceAt[T comparable](f func([]T) []T, xs []T) bool {
	once := f(xs)
	return slices.Equal(f(once), once)
}

// Greet is a pure function: its result depends only on name.
func Greet(name string) string {
	return "Hi, " + name
}

// Memoize caches the results of f by argument.
//
// Memoize is only valid for referentially transparent functions; caching an
// impure function changes the behavior of the program. The returned function
// is safe for concurrent use.
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	if f == nil {
		panic(nilFunc("Memoize"))
	}
	var mu sync.Mutex
	cache := make(map[K]V)
	return func(k K) V {
		mu.Lock()
		v, ok := cache[k]
		mu.Unlock()
		if ok {
			return v
		}
		v = f(k)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}
