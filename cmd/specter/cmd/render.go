package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/govalues/bigdecimal"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

// printer writes results either bare or with a label and a delay line.
type printer struct {
	out   io.Writer
	plain bool
	label lipgloss.Style
	muted lipgloss.Style
}

func newPrinter(w io.Writer, plain bool) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		out:   w,
		plain: plain,
		label: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
	}
}

func (p *printer) print(d bigdecimal.Decimal, elapsed time.Duration) {
	if p.plain {
		fmt.Fprintln(p.out, d)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.label.Render("Result:"), d)
	fmt.Fprintln(p.out, p.muted.Render(fmt.Sprintf("Delay: %v", elapsed)))
}
