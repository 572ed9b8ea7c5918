/*
Package fnkit provides small, generic functional-programming primitives:
arity inspection, filtering, partial application, currying, composition,
mapping and lazy sequences.

Most functions are pure: their result depends only on their arguments and
they have no observable side effect. Closures returned by Partial, Curry2 and
the other combinators capture their fixed arguments once, when they are
built, and never change them afterwards. The one deliberate exception is
InfiniteRandomSequence, which draws from a process-wide pseudo-random
generator and is documented as impure.

Functions are ordinary Go values, so every primitive is a higher-order
function that takes and returns them:

	add := func(a, b int) int { return a + b }

	n, _ := fnkit.Arity(add)            // 2
	add2 := fnkit.Curry2(add)(2)        // func(int) int
	add2(10)                            // 12

	evens := fnkit.Filter(fnkit.IsEven[int], []int{0, 1, 2, 3}) // [0 2]

	incrementAll := fnkit.MapAll(fnkit.Add(1)) // point-free
	incrementAll([]int{1, 2, 3, 4})            // [2 3 4 5]

Lazy sequences are iter.Seq values. Nothing is evaluated until the sequence
is ranged over, which makes infinite sequences usable:

	for v := range fnkit.Take(fnkit.InfiniteRandomSequence(), 3) {
		fmt.Println(v)
	}

# Errors

The generic API is checked by the compiler; the only invalid input it can
receive is a nil function, which panics where the combinator is built.

Arity and Func work on values whose signature is only known at run time.
They return an *ArgumentError wrapping ErrNotFunc, ErrArity or ErrArgType,
and always fail before the wrapped function is invoked.

# Concurrency

Everything in this package is synchronous. Two functions hold mutable
state: InfiniteRandomSequence draws from a process-wide generator that is not
safe for concurrent use, and the closure returned by Memoize keeps a cache
guarded by a mutex, so it may be shared between goroutines.
*/
package fnkit
