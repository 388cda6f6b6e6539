package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used for w.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled(w io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
	SymbolBullet  = "-"
)

// Printer writes styled progress messages. Informational output goes to out,
// warnings and errors to err.
type Printer struct {
	out io.Writer
	err io.Writer
}

func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// ProvidePrinter creates a Printer bound to the process stdout and stderr.
func ProvidePrinter() *Printer {
	return NewPrinter(os.Stdout, os.Stderr)
}

// Out returns the writer used for plain output such as rendered manifests.
func (p *Printer) Out() io.Writer {
	return p.out
}

func (p *Printer) style(w io.Writer, text string, codes ...string) string {
	if !ColorsEnabled(w) {
		return text
	}
	prefix := ""
	for _, c := range codes {
		prefix += c
	}
	return fmt.Sprintf("%s%s%s", prefix, text, reset)
}

// Bold returns text in bold (or plain if colors disabled)
func (p *Printer) Bold(text string) string {
	return p.style(p.out, text, bold)
}

// Dim returns text in dim style (or plain if colors disabled)
func (p *Printer) Dim(text string) string {
	return p.style(p.out, text, dim)
}

// Header prints a bold section header
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.out, p.style(p.out, text, bold, white))
}

// Success prints a success message with checkmark
func (p *Printer) Success(message string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style(p.out, SymbolSuccess, green), p.style(p.out, message, green))
}

// Error prints an error message with X symbol to stderr
func (p *Printer) Error(message string) {
	fmt.Fprintf(p.err, "%s %s\n", p.style(p.err, SymbolError, red), p.style(p.err, message, red))
}

// Warning prints a warning message with ! symbol to stderr
func (p *Printer) Warning(message string) {
	fmt.Fprintf(p.err, "%s %s\n", p.style(p.err, SymbolWarning, yellow), p.style(p.err, message, yellow))
}

// Info prints an info message with * symbol
func (p *Printer) Info(message string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style(p.out, SymbolInfo, cyan), p.style(p.out, message, cyan))
}

// Step prints a step being executed with arrow
func (p *Printer) Step(message string) {
	fmt.Fprintf(p.out, "  %s %s\n", SymbolArrow, message)
}

// Secondary prints secondary/supplementary information
func (p *Printer) Secondary(message string) {
	fmt.Fprintf(p.out, "  %s %s\n", SymbolArrow, p.style(p.out, message, dim, cyan))
}

// Println writes unstyled output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
