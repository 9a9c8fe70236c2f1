// Package output provides styled status messages and result formatting for
// the wren CLI.
//
// Status messages go to stderr so that stdout carries only the answer the
// user typed, ready to be captured by a shell script.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes styled status messages.
type Printer struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool

	success lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	step    lipgloss.Style
}

// NewPrinter creates a printer writing to out. plain disables styling.
func NewPrinter(out io.Writer, plain bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:     out,
		success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		step:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetVerbose enables or disables Verbose messages.
func (p *Printer) SetVerbose(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verbose = v
}

// Success prints a message for a completed operation.
func (p *Printer) Success(msg string) {
	p.println(p.success.Render("✔ " + msg))
}

// Error prints a failure that needs the user's attention.
func (p *Printer) Error(msg string) {
	p.println(p.err.Render("✘ " + msg))
}

// Info prints a status update.
func (p *Printer) Info(msg string) {
	p.println(p.info.Render(msg))
}

// Step prints an indented sub-item.
func (p *Printer) Step(msg string) {
	p.println(p.step.Render("   " + msg))
}

// Verbose prints a debug message only in verbose mode.
func (p *Printer) Verbose(msg string) {
	p.mu.Lock()
	v := p.verbose
	p.mu.Unlock()
	if v {
		p.println(p.step.Render("· " + msg))
	}
}

func (p *Printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}

var (
	defaultMu      sync.RWMutex
	defaultPrinter = NewPrinter(os.Stderr, false)
)

// SetDefault replaces the printer used by the package-level functions.
func SetDefault(p *Printer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPrinter = p
}

// Default returns the printer used by the package-level functions.
func Default() *Printer {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPrinter
}

// Error prints to the default printer.
func Error(msg string) { Default().Error(msg) }
