package fnkit

// MapFunc is a pure mapping function that transforms a value of type In into
// a value of type Out.
type MapFunc[In, Out any] func(in In) Out

// MapAll lifts fn to operate on slices: the returned function applies fn to
// every element and returns the results in a new slice of the same length
// and order. The input slice is never modified.
//
// MapAll is the point-free spelling of Map:
//
//	incrementAll := fnkit.MapAll(fnkit.Add(1))
//	incrementAll([]int{1, 2, 3, 4}) // [2 3 4 5]
//
// Slices form a functor under MapAll: mapping Identity returns an equal
// slice, and MapAll(Compose(f, g)) equals Compose(MapAll(f), MapAll(g)).
//
// MapAll panics if fn is nil.
func MapAll[In, Out any](fn MapFunc[In, Out]) func([]In) []Out {
	if fn == nil {
		panic(nilFunc("MapAll"))
	}
	return func(xs []In) []Out {
		return mapSlice(xs, fn)
	}
}

// Map applies fn to each element of xs and returns the results in order.
func Map[In, Out any](xs []In, fn MapFunc[In, Out]) []Out {
	if fn == nil {
		panic(nilFunc("Map"))
	}
	return mapSlice(xs, fn)
}

func mapSlice[In, Out any](xs []In, fn MapFunc[In, Out]) []Out {
	out := make([]Out, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// Reduce folds xs from the left, starting from init.
func Reduce[T, Acc any](xs []T, init Acc, fn func(Acc, T) Acc) Acc {
	if fn == nil {
		panic(nilFunc("Reduce"))
	}
	acc := init
	for _, x := range xs {
		acc = fn(acc, x)
	}
	return acc
}
