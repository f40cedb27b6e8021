package config

import (
	"strings"

	"github.com/footprint-tools/parallax/internal/actions"
	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/usage"
)

type subcommand func([]string, Deps) error

var subcommands = map[string]subcommand{
	"get":   Get,
	"set":   Set,
	"unset": Unset,
	"list":  List,
}

type consoleCommand struct {
	deps Deps
}

// NewCommand returns the console command "config", which runs the same
// actions as `parallax config` with output going to the console sink.
func NewCommand(deps Deps) dispatchers.Command {
	return &consoleCommand{deps: deps}
}

func (c *consoleCommand) Name() string { return "config" }

func (c *consoleCommand) Usage() string {
	return "Reads and edits the configuration file."
}

func (c *consoleCommand) Syntax() string {
	return "config list | get <key> | set <key> <value> | unset <key>"
}

func (c *consoleCommand) Description() string {
	return "Lists, reads, sets or removes configuration keys. Changes apply the next time parallax starts."
}

func (c *consoleCommand) Execute(ctx *dispatchers.InvocationContext) error {
	args := ctx.Arguments()
	if len(args) == 0 {
		return usage.MissingArgument("list|get|set|unset")
	}

	run, ok := subcommands[strings.ToLower(args[0])]
	if !ok {
		return usage.UnknownCommand("config " + args[0])
	}

	deps := c.deps
	printer := actions.NewPrinter(ctx.Output())
	deps.Printf = printer.Printf
	deps.Println = printer.Println

	return run(args[1:], deps)
}
