package fnkit

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of types Add and Abs operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Curry2 converts a binary function into a chain of unary functions, so that
// Curry2(f)(a)(b) == f(a, b).
//
// Curry2 panics if f is nil.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	if f == nil {
		panic(nilFunc("Curry2"))
	}
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 converts a ternary function into a chain of unary functions.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	if f == nil {
		panic(nilFunc("Curry3"))
	}
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	if f == nil {
		panic(nilFunc("Uncurry2"))
	}
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	if f == nil {
		panic(nilFunc("Flip"))
	}
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Add is curried addition: Add(a)(b) == a + b.
func Add[T Number](a T) func(T) T {
	return func(b T) T {
		return a + b
	}
}

// Sum is uncurried addition.
func Sum[T Number](a, b T) T {
	return a + b
}
