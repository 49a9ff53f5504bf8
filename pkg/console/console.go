// Package console wires workflow lifecycle hooks to a terminal. It
// provides a plain line printer for non-interactive output and a bubbletea
// dashboard for interactive sessions.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/panthios/barley/pkg/runtime"
)

// Printer installs lifecycle hooks that print one line per event.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w. A nil writer defaults to
// standard output.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Attach registers the printer's hooks on the builder.
func (p *Printer) Attach(b *runtime.Builder) {
	b.OnActionStarted(func(n *runtime.Node) {
		fmt.Fprintf(p.w, "[STARTED] %s\n", n.DisplayName())
	})
	b.OnActionFinished(func(n *runtime.Node) {
		fmt.Fprintf(p.w, "[FINISHED] %s\n", n.DisplayName())
	})
	b.OnActionFailed(func(n *runtime.Node, err error) {
		fmt.Fprintf(p.w, "[FAILED] %s: %v\n", n.DisplayName(), err)
	})
}

// Interactive reports whether stdout is a terminal, which decides between
// the dashboard and the plain printer.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
