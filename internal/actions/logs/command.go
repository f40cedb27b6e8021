package logs

import (
	"strings"

	"github.com/footprint-tools/parallax/internal/actions"
	"github.com/footprint-tools/parallax/internal/dispatchers"
)

type consoleCommand struct {
	deps Deps
}

// NewCommand returns the console command "logs".
func NewCommand(deps Deps) dispatchers.Command {
	return &consoleCommand{deps: deps}
}

func (c *consoleCommand) Name() string   { return "logs" }
func (c *consoleCommand) Usage() string  { return "Shows or clears the log file." }
func (c *consoleCommand) Syntax() string { return "logs [lines] | logs json [lines] | logs clear" }

func (c *consoleCommand) Execute(ctx *dispatchers.InvocationContext) error {
	deps := c.deps
	printer := actions.NewPrinter(ctx.Output())
	deps.Printf = printer.Printf
	deps.Println = printer.Println

	args := ctx.Arguments()
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "clear":
			return Clear(args[1:], deps)
		case "json":
			return JSON(args[1:], deps)
		}
	}
	return View(args, deps)
}
