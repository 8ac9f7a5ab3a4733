package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

// ColorMode selects when output is colorized.
type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

var _ pflag.Value = (*ColorMode)(nil)

// String implements pflag.Value.
func (m *ColorMode) String() string {
	if *m == "" {
		return string(ColorAuto)
	}
	return string(*m)
}

// Set implements pflag.Value.
func (m *ColorMode) Set(value string) error {
	switch ColorMode(value) {
	case ColorAlways, ColorAuto, ColorNever:
		*m = ColorMode(value)
		return nil
	default:
		return fmt.Errorf("invalid color mode %q, must be one of always|auto|never", value)
	}
}

// Type implements pflag.Value.
func (m *ColorMode) Type() string {
	return "always|auto|never"
}

// ShouldColor reports whether output should be colorized. The auto mode
// defers to the terminal detection done by the color package.
func (m ColorMode) ShouldColor() bool {
	switch m {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return !color.NoColor
	}
}

// Printer renders outcomes and task status lines.
type Printer struct {
	colored bool

	success *color.Color
	failure *color.Color
	status  *color.Color
}

// NewPrinter creates a printer for the given color mode.
func NewPrinter(mode ColorMode) *Printer {
	p := &Printer{
		colored: mode.ShouldColor(),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		status:  color.New(color.FgCyan, color.Bold),
	}

	if p.colored {
		for _, c := range []*color.Color{p.success, p.failure, p.status} {
			c.EnableColor()
		}
	}
	return p
}

func (p *Printer) sprint(c *color.Color, s string) string {
	if p.colored {
		return c.Sprint(s)
	}
	return s
}

// Outcome writes the outcome message. Only the headline is colorized,
// detail lines are written as-is.
func (p *Printer) Outcome(w io.Writer, o Outcome) {
	headline, detail := o.Message, ""
	if i := strings.IndexByte(o.Message, '\n'); i >= 0 {
		headline, detail = o.Message[:i], o.Message[i:]
	}

	c := p.success
	if !o.Succeeded {
		c = p.failure
	}
	fmt.Fprintln(w, p.sprint(c, headline)+detail)
}

// Status writes a bracketed task status line.
func (p *Printer) Status(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, p.sprint(p.status, "["+fmt.Sprintf(format, a...)+"]"))
}

// Failure writes a failure line that isn't tied to a command outcome.
func (p *Printer) Failure(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, p.sprint(p.failure, failureMark+" "+fmt.Sprintf(format, a...)))
}
