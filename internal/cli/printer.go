package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes the status lines the user sees. Colour is dropped
// automatically when the output is not a terminal.
type Printer struct {
	out     io.Writer
	status  *color.Color
	success *color.Color
	failure *color.Color
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		status:  color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Statusf prints an informational line.
func (p *Printer) Statusf(format string, args ...interface{}) {
	p.status.Fprintf(p.out, format+"\n", args...)
}

// Successf prints a line for a completed step.
func (p *Printer) Successf(format string, args ...interface{}) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

// Errorf prints a line for a failed step.
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.failure.Fprintf(p.out, format+"\n", args...)
}

// Println prints msg without colour.
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.out, msg)
}
