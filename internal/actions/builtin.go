package actions

import (
	"strings"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// NewVersion returns a command printing "parallax version <version>".
func NewVersion(version string) dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:        "version",
		Usage:       "Shows the parallax version.",
		Syntax:      "version",
		Description: "Prints the version of the running parallax binary.",
		Action: func(ctx *dispatchers.InvocationContext) error {
			ctx.Output().Info("parallax version " + version)
			return nil
		},
	})
}

// NewQuit returns a command named name that stops the console's reader.
// Commands already running finish normally.
func NewQuit(name string) dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:        name,
		Usage:       "Stops reading input and exits the console.",
		Syntax:      name,
		Description: "Interrupts the console reader. Commands that are still running are allowed to finish.",
		Action: func(ctx *dispatchers.InvocationContext) error {
			ctx.Logger().Info("actions: %s requested (invocation %s)", name, ctx.ID())
			ctx.Engine().Interrupt()
			return nil
		},
	})
}

// NewEcho returns a command that prints its arguments separated by spaces.
func NewEcho() dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:        "echo",
		Usage:       "Prints its arguments.",
		Syntax:      "echo [text...]",
		Description: "Prints the parsed arguments joined by single spaces. Useful to check how a line is parsed.",
		Action: func(ctx *dispatchers.InvocationContext) error {
			ctx.Output().Info(strings.Join(ctx.Arguments(), " "))
			return nil
		},
	})
}

// Builtins returns help, version, echo, quit and exit in listing order.
func Builtins(version string) []dispatchers.Command {
	return []dispatchers.Command{
		NewHelp(),
		NewVersion(version),
		NewEcho(),
		NewQuit("quit"),
		NewQuit("exit"),
	}
}
