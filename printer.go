package cmdtree

import (
	"fmt"
	"io"
	"os"
)

// Printer is where command handlers and drivers write user-visible text.
// Command output goes to out, diagnostics to err. The zero defaults are
// stdout and stderr; tests redirect both to a buffer.
type Printer struct {
	out io.Writer
	err io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr}
}

// Redirect sends both streams to writer.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.err = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Errorf writes a diagnostic line to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.err, format, args...)
}

func (p *Printer) Errorln(msg ...any) {
	_, _ = fmt.Fprintln(p.err, msg...)
}
