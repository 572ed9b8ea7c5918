package fnkit_test

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KasperOmsK/fnkit"
)

// Example walks through the primitives in the order they are usually taught.
func Example() {
	sum := func(a, b int) int { return a + b }

	// Arity is the number of arguments a function takes.
	n, _ := fnkit.Arity(sum)
	fmt.Println("arity:", n)

	// Higher-order functions take or return other functions.
	fmt.Println(fnkit.Filter(fnkit.IsA[int](), []any{0, "1", 2, nil}))

	// Partial application fixes some arguments ahead of time.
	add3 := func(a, b, c int) int { return a + b + c }
	fivePlus := fnkit.Partial2of3(add3, 2, 3)
	fmt.Println(fivePlus(4))

	// Currying turns a binary function into a chain of unary ones.
	curriedSum := fnkit.Curry2(sum)
	add2 := curriedSum(2)
	fmt.Println(curriedSum(40)(2), add2(10))

	// Composition builds x -> f(g(x)).
	floorAndToString := fnkit.Compose(strconv.Itoa, func(v float64) int {
		return int(math.Floor(v))
	})
	fmt.Printf("%q\n", floorAndToString(121.212121))

	// Point-free style never names the list.
	incrementAll := fnkit.MapAll(fnkit.Add(1))
	fmt.Println(incrementAll([]int{1, 2, 3, 4}))

	// Output:
	// arity: 2
	// [0 2]
	// 9
	// 42 12
	// "121"
	// [2 3 4 5]
}

func ExampleMapAll_functorLaws() {
	f := func(x int) int { return x + 1 }
	g := func(x int) int { return x * 2 }
	xs := []int{1, 2, 3}

	fmt.Println(fnkit.MapAll(fnkit.Identity[int])(xs))
	fmt.Println(fnkit.MapAll(fnkit.Compose(f, g))(xs))
	fmt.Println(fnkit.MapAll(f)(fnkit.MapAll(g)(xs)))

	// Output:
	// [1 2 3]
	// [3 5 7]
	// [3 5 7]
}

func ExampleSorted() {
	fmt.Println(fnkit.Sorted(fnkit.Sorted(fnkit.Sorted([]int{2, 1}))))
	fmt.Println(fnkit.Abs(fnkit.Abs(-10)))

	// Output:
	// [1 2]
	// 10
}

func ExampleInfiniteRandomSequence() {
	next, stop := fnkit.Pull(fnkit.InfiniteRandomSequence())
	defer stop()

	v, ok := next()
	fmt.Println(ok, v >= 0 && v < 1)

	// Output:
	// true true
}

func ExampleFunc_Partial() {
	fn, _ := fnkit.NewFunc(func(a, b, c int) int { return a + b + c })

	fivePlus, _ := fn.Partial(2, 3)
	out, _ := fivePlus.Call(4)
	fmt.Println(fivePlus.Arity(), out[0])

	_, err := fn.Partial(1, 2, 3, 4)
	fmt.Println(err)

	// Output:
	// 1 9
	// fnkit.Partial: wrong number of arguments: 4 arguments fixed for a function of arity 3
}
