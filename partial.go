package fnkit

// Partial fixes the leading arguments of a variadic function.
//
// The returned function calls f with fixed followed by the arguments it
// receives. fixed is copied when Partial is called: changing the caller's
// slice afterwards does not affect the result.
//
//	sum := func(xs ...int) int { ... }
//	fivePlus := fnkit.Partial(sum, 2, 3)
//	fivePlus(4) // 9
//
// Partial panics if f is nil.
func Partial[T, R any](f func(...T) R, fixed ...T) func(...T) R {
	if f == nil {
		panic(nilFunc("Partial"))
	}
	prefix := append([]T(nil), fixed...)
	return func(rest ...T) R {
		args := make([]T, 0, len(prefix)+len(rest))
		args = append(args, prefix...)
		args = append(args, rest...)
		return f(args...)
	}
}

// Partial1of2 fixes the first argument of a binary function.
func Partial1of2[A, B, R any](f func(A, B) R, a A) func(B) R {
	if f == nil {
		panic(nilFunc("Partial1of2"))
	}
	return func(b B) R {
		return f(a, b)
	}
}

// Partial1of3 fixes the first argument of a ternary function.
func Partial1of3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	if f == nil {
		panic(nilFunc("Partial1of3"))
	}
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Partial2of3 fixes the first two arguments of a ternary function.
//
//	add3 := func(a, b, c int) int { return a + b + c }
//	fivePlus := fnkit.Partial2of3(add3, 2, 3)
//	fivePlus(4) // 9
func Partial2of3[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	if f == nil {
		panic(nilFunc("Partial2of3"))
	}
	return func(c C) R {
		return f(a, b, c)
	}
}
