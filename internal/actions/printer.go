package actions

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// Printer adapts an output sink to the Printf and Println shapes the
// config, theme and logs actions print through. Each call becomes one Info
// message without its trailing newline.
type Printer struct {
	out dispatchers.OutputSink
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out dispatchers.OutputSink) Printer {
	return Printer{out: out}
}

func (p Printer) Printf(format string, a ...any) (int, error) {
	msg := fmt.Sprintf(format, a...)
	p.out.Info(strings.TrimSuffix(msg, "\n"))
	return len(msg), nil
}

func (p Printer) Println(a ...any) (int, error) {
	msg := fmt.Sprintln(a...)
	p.out.Info(strings.TrimSuffix(msg, "\n"))
	return len(msg), nil
}
