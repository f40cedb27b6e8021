// Package ui holds the terminal output sink used by the dispatch engine.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/ui/style"
)

// Writer is an output sink: info messages go to out, error messages to
// errOut. Every message is written as one line under a mutex, so lines
// from concurrently running commands never interleave.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	styler domain.Styler
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithErrorOutput sends error messages to w instead of out.
func WithErrorOutput(w io.Writer) WriterOption {
	return func(wr *Writer) {
		if w != nil {
			wr.errOut = w
		}
	}
}

// WithStyler sets the styler for error messages. The default uses the
// style package, which is plain text until style.Init enables it.
func WithStyler(s domain.Styler) WriterOption {
	return func(w *Writer) {
		if s != nil {
			w.styler = s
		}
	}
}

// NewWriterTo creates a Writer on out. Errors also go to out unless
// WithErrorOutput says otherwise.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:    out,
		errOut: out,
		styler: style.NewStyler(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Info writes message to the standard output.
func (w *Writer) Info(message string) {
	w.line(w.out, message)
}

// Error writes message, styled as an error, to the error output.
func (w *Writer) Error(message string) {
	w.line(w.errOut, w.styler.Error(message))
}

func (w *Writer) line(dst io.Writer, message string) {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(dst, message)
}

// Write implements io.Writer on the standard output. It takes the same
// lock as Info, so Printf and Println never split a console line.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Printf formats to the standard output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, args...)
}

// Println prints a line to the standard output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w, args...)
}

var _ dispatchers.OutputSink = (*Writer)(nil)
