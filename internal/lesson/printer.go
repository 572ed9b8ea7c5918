package lesson

import (
	"fmt"
	"io"

	"github.com/KasperOmsK/fnkit/internal/formatutil"
)

// Printer writes annotated expressions. The first write error is kept and
// every later write becomes a no-op.
type Printer struct {
	w   io.Writer
	err error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Eval prints expr annotated with the value it evaluates to:
//
//	curriedSum(40)(2) #=> 42
func (p *Printer) Eval(expr string, v any) {
	p.printf("%s %s %s\n", formatutil.Cyan(expr), formatutil.Faint("#=>"), formatutil.Green(formatutil.Repr(v)))
}

// Note prints a comment line.
func (p *Printer) Note(format string, args ...any) {
	p.printf("%s\n", formatutil.Faint("# "+fmt.Sprintf(format, args...)))
}

// Say prints text as is. It is the side effect shown by the side effects
// lesson.
func (p *Printer) Say(text string) {
	p.printf("%s\n", text)
}

func (p *Printer) heading(title string) {
	p.printf("%s\n", formatutil.Bold("== "+title))
}

func (p *Printer) blank() {
	p.printf("\n")
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}
