package fnkit

// Compose returns the function x -> f(g(x)).
//
//	floorAndString := fnkit.Compose(strconv.Itoa, func(f float64) int { return int(math.Floor(f)) })
//	floorAndString(121.212121) // "121"
//
// Composition is associative: Compose(f, Compose(g, h)) and
// Compose(Compose(f, g), h) compute the same function.
//
// Compose panics if f or g is nil.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	if f == nil || g == nil {
		panic(nilFunc("Compose"))
	}
	return func(x A) C {
		return f(g(x))
	}
}

// Pipe is Compose with its arguments in application order:
// Pipe(g, f)(x) == f(g(x)).
func Pipe[A, B, C any](g func(A) B, f func(B) C) func(A) C {
	return Compose(f, g)
}

// ComposeAll composes functions of the same type from right to left:
// ComposeAll(f, g, h)(x) == f(g(h(x))). With no functions it returns Identity.
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	for _, fn := range fns {
		if fn == nil {
			panic(nilFunc("ComposeAll"))
		}
	}
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

// Identity returns its argument unchanged. It is the identity element of
// Compose.
func Identity[T any](x T) T {
	return x
}

// Constant returns a zero-argument function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Const returns a unary function that ignores its argument and returns v.
func Const[B, T any](v T) func(B) T {
	return func(B) T {
		return v
	}
}
