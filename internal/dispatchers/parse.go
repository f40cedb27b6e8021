package dispatchers

import (
	"strings"

	"github.com/google/shlex"
)

// ParseResult is one parsed input line: a command name and its arguments.
type ParseResult struct {
	name string
	args []string
}

// NewParseResult builds a ParseResult. args is copied.
func NewParseResult(name string, args []string) ParseResult {
	out := make([]string, len(args))
	copy(out, args)
	return ParseResult{name: name, args: out}
}

// Name returns the parsed command name.
func (r ParseResult) Name() string {
	return r.name
}

// Arguments returns a copy of the parsed arguments. Never nil.
func (r ParseResult) Arguments() []string {
	out := make([]string, len(r.args))
	copy(out, r.args)
	return out
}

// NumArguments returns the number of arguments.
func (r ParseResult) NumArguments() int {
	return len(r.args)
}

// Argument returns the i-th argument.
func (r ParseResult) Argument(i int) (string, bool) {
	if i < 0 || i >= len(r.args) {
		return "", false
	}
	return r.args[i], true
}

// String joins the name and arguments with single spaces.
func (r ParseResult) String() string {
	if len(r.args) == 0 {
		return r.name
	}
	return r.name + " " + strings.Join(r.args, " ")
}

// Parser turns a raw input line into a ParseResult. Parse must not fail.
type Parser interface {
	Parse(raw string) ParseResult
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(raw string) ParseResult

func (f ParserFunc) Parse(raw string) ParseResult {
	return f(raw)
}

// SimpleParser trims the line, collapses runs of spaces and splits on a single
// space. The first token is the name, the rest are arguments.
type SimpleParser struct{}

func (SimpleParser) Parse(raw string) ParseResult {
	tokens := splitSpaces(strings.TrimSpace(raw))
	if len(tokens) == 0 {
		return NewParseResult("", nil)
	}
	return ParseResult{name: tokens[0], args: tokens[1:]}
}

// splitSpaces splits on runs of ' ' only; other whitespace stays inside tokens.
func splitSpaces(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(s, " ") {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// ShellParser splits with shell quoting rules, so `say "hello world"` yields a
// single argument. Input shlex rejects (an unbalanced quote) is parsed by
// SimpleParser instead.
type ShellParser struct{}

func (ShellParser) Parse(raw string) ParseResult {
	tokens, err := shlex.Split(raw)
	if err != nil {
		return SimpleParser{}.Parse(raw)
	}
	if len(tokens) == 0 {
		return NewParseResult("", nil)
	}
	return ParseResult{name: tokens[0], args: tokens[1:]}
}

var (
	_ Parser = SimpleParser{}
	_ Parser = ShellParser{}
)
