package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✓")
	errorMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✗")
	warningMark = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("!")
	debugMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render("[debug]")
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Output handles styled terminal output.
type Output struct {
	out     io.Writer
	err     io.Writer
	noColor bool
}

// NewOutput creates an Output writing to stdout and stderr.
func NewOutput() *Output {
	return NewOutputTo(os.Stdout, os.Stderr)
}

// NewOutputTo creates an Output writing to the given streams.
func NewOutputTo(out, err io.Writer) *Output {
	return &Output{out: out, err: err}
}

// SetNoColor disables colored output.
func (o *Output) SetNoColor(v bool) {
	o.noColor = v
}

// Success prints a success message with a green checkmark.
func (o *Output) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(o.out, "OK %s\n", msg)
	} else {
		fmt.Fprintf(o.out, "%s %s\n", successMark, msg)
	}
}

// Error prints an error message with a red X.
func (o *Output) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(o.err, "FAIL %s\n", msg)
	} else {
		fmt.Fprintf(o.err, "%s %s\n", errorMark, msg)
	}
}

// Warning prints a warning message with a yellow exclamation.
func (o *Output) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(o.err, "WARN %s\n", msg)
	} else {
		fmt.Fprintf(o.err, "%s %s\n", warningMark, msg)
	}
}

// Info prints an informational message.
func (o *Output) Info(format string, args ...any) {
	fmt.Fprintf(o.out, format+"\n", args...)
}

// Println prints a line to stdout verbatim.
func (o *Output) Println(line string) {
	fmt.Fprintln(o.out, line)
}

// Header prints a line in bold.
func (o *Output) Header(line string) {
	if o.noColor {
		fmt.Fprintln(o.out, line)
		return
	}
	fmt.Fprintln(o.out, headerStyle.Render(line))
}

// Write copies raw bytes to stdout, for machine-readable output.
func (o *Output) Write(p []byte) (int, error) {
	return o.out.Write(p)
}

// Debug prints a debug message to stderr.
func (o *Output) Debug(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(o.err, "DEBUG %s\n", msg)
	} else {
		fmt.Fprintf(o.err, "%s %s\n", debugMark, msg)
	}
}
