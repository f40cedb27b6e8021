package theme

import (
	"strings"

	"github.com/footprint-tools/parallax/internal/actions"
	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/usage"
)

type consoleCommand struct {
	deps Deps
}

// NewCommand returns the console command "theme".
func NewCommand(deps Deps) dispatchers.Command {
	return &consoleCommand{deps: deps}
}

func (c *consoleCommand) Name() string   { return "theme" }
func (c *consoleCommand) Syntax() string { return "theme [list | set <name>]" }

func (c *consoleCommand) Usage() string {
	return "Lists the color themes or switches to another one."
}

func (c *consoleCommand) Execute(ctx *dispatchers.InvocationContext) error {
	deps := c.deps
	printer := actions.NewPrinter(ctx.Output())
	deps.Printf = printer.Printf
	deps.Println = printer.Println

	args := ctx.Arguments()
	if len(args) == 0 {
		return List(nil, deps)
	}

	switch strings.ToLower(args[0]) {
	case "list":
		return List(args[1:], deps)
	case "set":
		return Set(args[1:], deps)
	default:
		return usage.UnknownCommand("theme " + args[0])
	}
}
