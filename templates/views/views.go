// Package views renders the Win95-styled pages as templ components.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// hw accumulates HTML onto a writer, capturing the first write error so
// component bodies stay linear.
type hw struct {
	w   io.Writer
	err error
}

func (h *hw) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *hw) rawf(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.w, format, args...)
	}
}

// text writes s HTML-escaped.
func (h *hw) text(s string) {
	h.raw(templ.EscapeString(s))
}

func component(render func(h *hw)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &hw{w: w}
		render(h)
		return h.err
	})
}
