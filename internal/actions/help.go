// Package actions holds the commands bundled with every parallax console.
package actions

import (
	"fmt"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

type helpCommand struct{}

// NewHelp returns the help command. Without arguments it lists every
// registered command with its usage; with a command name it shows that
// command's description and syntax.
func NewHelp() dispatchers.Command {
	return helpCommand{}
}

func (helpCommand) Name() string { return "help" }

func (helpCommand) Usage() string {
	return "Displays all commands and their usages. If a command is specified, displays its description."
}

func (helpCommand) Syntax() string { return "help [command]" }

func (helpCommand) Description() string {
	return "Built-in command. Shows the list of all commands and their usages. If a command is specified, displays its description."
}

func (h helpCommand) Execute(ctx *dispatchers.InvocationContext) error {
	name, ok := ctx.ParseResult().Argument(0)
	if !ok {
		h.listCommands(ctx)
		return nil
	}
	h.describe(ctx, name)
	return nil
}

func (helpCommand) listCommands(ctx *dispatchers.InvocationContext) {
	out := ctx.Output()
	commands := ctx.Commands()

	out.Info(fmt.Sprintf("Number of commands: %d", len(commands)))
	for _, cmd := range commands {
		out.Info("  " + cmd.Name() + "\t" + dispatchers.UsageOf(cmd))
	}
	out.Info("Specify a command in the help command to see its description.")
}

func (helpCommand) describe(ctx *dispatchers.InvocationContext, name string) {
	out := ctx.Output()

	cmd, ok := ctx.Lookup(name)
	if !ok {
		out.Error("Command not found: " + name)
		return
	}

	out.Info("Command: " + cmd.Name())
	out.Info("Description: " + dispatchers.DescriptionOf(cmd))
	out.Info("Syntax: " + dispatchers.SyntaxOf(cmd))
}
