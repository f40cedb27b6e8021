// Package testutil provides doubles for exercising the dispatch engine.
package testutil

import (
	"strings"
	"sync"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// Message is one line written to a RecordingOutput.
type Message struct {
	Error bool
	Text  string
}

// RecordingOutput is an output sink that keeps every message in order.
type RecordingOutput struct {
	mu       sync.Mutex
	messages []Message
}

// NewRecordingOutput returns an empty recorder.
func NewRecordingOutput() *RecordingOutput {
	return &RecordingOutput{}
}

func (o *RecordingOutput) Info(message string) {
	o.add(Message{Text: message})
}

func (o *RecordingOutput) Error(message string) {
	o.add(Message{Error: true, Text: message})
}

func (o *RecordingOutput) add(m Message) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, m)
}

// Messages returns a copy of everything recorded.
func (o *RecordingOutput) Messages() []Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Message(nil), o.messages...)
}

// Infos returns the info messages in order.
func (o *RecordingOutput) Infos() []string {
	return o.filter(false)
}

// Errors returns the error messages in order.
func (o *RecordingOutput) Errors() []string {
	return o.filter(true)
}

func (o *RecordingOutput) filter(errs bool) []string {
	var out []string
	for _, m := range o.Messages() {
		if m.Error == errs {
			out = append(out, m.Text)
		}
	}
	return out
}

// String renders all messages, one per line, errors prefixed with "E: ".
func (o *RecordingOutput) String() string {
	var b strings.Builder
	for _, m := range o.Messages() {
		if m.Error {
			b.WriteString("E: ")
		}
		b.WriteString(m.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Reset drops all recorded messages.
func (o *RecordingOutput) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = nil
}

var _ dispatchers.OutputSink = (*RecordingOutput)(nil)
