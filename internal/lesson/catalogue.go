package lesson

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/exp/slices"

	"github.com/KasperOmsK/fnkit"
)

func sum(a, b int) int { return a + b }

func arity(p *Printer, _ Env) {
	n := fnkit.MustArity(sum)
	p.Eval("fnkit.Arity(sum)", n)
	p.Note("The arity of sum is %d", n)
}

func higherOrder(p *Printer, _ Env) {
	p.Eval(`fnkit.Filter(fnkit.IsA[int](), []any{0, "1", 2, nil})`,
		fnkit.Filter(fnkit.IsA[int](), []any{0, "1", 2, nil}))
}

func partial(p *Printer, _ Env) {
	add3 := func(a, b, c int) int { return a + b + c }

	fivePlus := fnkit.Partial2of3(add3, 2, 3)
	p.Eval("fivePlus(4)", fivePlus(4))

	dyn, err := fnkit.NewFunc(add3)
	if err != nil {
		p.Note("%v", err)
		return
	}
	dynFivePlus, err := dyn.Partial(2, 3)
	if err != nil {
		p.Note("%v", err)
		return
	}
	p.Eval("dynFivePlus.Arity()", dynFivePlus.Arity())

	_, err = dyn.Partial(1, 2, 3, 4)
	p.Eval("dyn.Partial(1, 2, 3, 4)", err.Error())
}

func currying(p *Printer, _ Env) {
	curriedSum := fnkit.Curry2(sum)
	p.Eval("curriedSum(40)(2)", curriedSum(40)(2))

	add2 := curriedSum(2)
	p.Eval("add2(10)", add2(10))
}

func composition(p *Printer, _ Env) {
	floor := func(v float64) int { return int(math.Floor(v)) }
	floorAndToString := fnkit.Compose(strconv.Itoa, floor)
	p.Eval("floorAndToString(121.212121)", floorAndToString(121.212121))
}

func purity(p *Printer, _ Env) {
	p.Eval(`fnkit.Greet("Brianne")`, fnkit.Greet("Brianne"))

	name := "Brianne"
	greet := func() string { return "Hi, " + name }
	p.Eval("greet()", greet())
	p.Note("greet reads name from its enclosing scope: it is only pure while name never changes")
}

func sideEffects(p *Printer, _ Env) {
	differentEveryTime := time.Now()
	p.Eval("time.Now()", differentEveryTime.Format(time.RFC3339Nano))
	p.Say("IO is a side effect!")
}

func idempotence(p *Printer, _ Env) {
	p.Note("f(f(x)) == f(x)")
	p.Eval("fnkit.Abs(fnkit.Abs(10))", fnkit.Abs(fnkit.Abs(10)))
	p.Eval("fnkit.Sorted(fnkit.Sorted(fnkit.Sorted([]int{2, 1})))",
		fnkit.Sorted(fnkit.Sorted(fnkit.Sorted([]int{2, 1}))))
}

func pointFree(p *Printer, _ Env) {
	incrementAll := func(numbers []int) []int {
		return fnkit.MapAll(fnkit.Add(1))(numbers)
	}
	p.Eval("incrementAll([]int{1, 2, 3, 4})", incrementAll([]int{1, 2, 3, 4}))

	incrementAll2 := fnkit.MapAll(fnkit.Add(1))
	p.Eval("incrementAll2([]int{1, 2, 3, 4})", incrementAll2([]int{1, 2, 3, 4}))
}

func predicate(p *Printer, _ Env) {
	p.Eval("fnkit.Filter(fnkit.GreaterThan(2), []int{1, 2, 3, 4})",
		fnkit.Filter(fnkit.GreaterThan(2), []int{1, 2, 3, 4}))
}

func values(p *Printer, _ Env) {
	p.Eval("5", 5)
	p.Eval(`map[string]any{"name": "John", "age": 30}`, map[string]any{"name": "John", "age": 30})
	p.Eval("func(a int) int { return a }", fnkit.Identity[int])
	p.Eval("[]int{1}", []int{1})
	p.Eval("nil", nil)

	five := fnkit.Constant(5)
	p.Eval("five()", five())
}

func functor(p *Printer, _ Env) {
	type object struct{}
	objects := []*object{{}}

	p.Note("preserves identity")
	p.Eval("slices.Equal(fnkit.MapAll(fnkit.Identity[*object])(objects), objects)",
		slices.Equal(fnkit.MapAll(fnkit.Identity[*object])(objects), objects))

	p.Note("composable")
	f := func(x int) int { return x + 1 }
	g := func(x int) int { return x * 2 }
	xs := []int{1, 2, 3}
	p.Eval("fnkit.MapAll(fnkit.Compose(f, g))(xs)", fnkit.MapAll(fnkit.Compose(f, g))(xs))
	p.Eval("fnkit.MapAll(f)(fnkit.MapAll(g)(xs))", fnkit.MapAll(f)(fnkit.MapAll(g)(xs)))
}

func referentialTransparency(p *Printer, _ Env) {
	greet := fnkit.Constant("Hello World!")
	p.Eval("greet()", greet())
	p.Eval(`greet() == "Hello World!"`, greet() == "Hello World!")
}

func lambda(p *Printer, _ Env) {
	add1 := func(a int) int { return a + 1 }
	p.Eval("fnkit.Map([]int{1, 2}, add1)", fnkit.Map([]int{1, 2}, add1))
	p.Eval("fnkit.Map([]int{1, 2}, func(a int) int { return a + 1 })",
		fnkit.Map([]int{1, 2}, func(a int) int { return a + 1 }))
}

func lazy(p *Printer, env Env) {
	next, stop := fnkit.Pull(env.Random)
	defer stop()

	for range env.RandomPulls {
		v, ok := next()
		if !ok {
			return
		}
		p.Eval("next()", v)
	}
	p.Note("each pull computes a new value, on demand")
}
