// Package lesson holds the catalogue of walkthrough lessons. Each lesson
// evaluates a few expressions with the fnkit primitives and prints them next
// to their results.
package lesson

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/KasperOmsK/fnkit"
)

// ErrUnknownLesson is returned by Select for a name that is not in the catalogue.
var ErrUnknownLesson = errors.New("unknown lesson")

// Env carries the inputs a lesson may need from its caller.
type Env struct {
	// RandomPulls is how many values the lazy lesson pulls.
	RandomPulls int

	// Random replaces fnkit.InfiniteRandomSequence when set.
	Random iter.Seq[float64]
}

// Lesson is one topic of the walkthrough.
type Lesson struct {
	Name  string
	Title string
	run   func(p *Printer, env Env)
}

// All returns the catalogue in teaching order.
func All() []Lesson {
	return []Lesson{
		{"arity", "Arity", arity},
		{"hof", "Higher-Order Functions", higherOrder},
		{"partial", "Partial Application", partial},
		{"currying", "Currying", currying},
		{"composition", "Function Composition", composition},
		{"purity", "Purity", purity},
		{"side-effects", "Side Effects", sideEffects},
		{"idempotence", "Idempotence", idempotence},
		{"point-free", "Point-Free Style", pointFree},
		{"predicate", "Predicate", predicate},
		{"values", "Values and Constants", values},
		{"functor", "Functor", functor},
		{"referential-transparency", "Referential Transparency", referentialTransparency},
		{"lambda", "Lambda", lambda},
		{"lazy", "Lazy Evaluation", lazy},
	}
}

// Select returns the lessons named in names, in the order given. No names
// selects the whole catalogue.
func Select(names []string) ([]Lesson, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Lesson, len(all))
	for _, l := range all {
		byName[l.Name] = l
	}

	selected := make([]Lesson, 0, len(names))
	for _, name := range names {
		l, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLesson, name)
		}
		selected = append(selected, l)
	}
	return selected, nil
}

// Run prints l to w.
func (l Lesson) Run(w io.Writer, env Env) error {
	if env.Random == nil {
		env.Random = fnkit.InfiniteRandomSequence()
	}
	p := NewPrinter(w)
	p.heading(l.Title)
	l.run(p, env)
	p.blank()
	if err := p.Err(); err != nil {
		return fmt.Errorf("lesson %s: %w", l.Name, err)
	}
	return nil
}
