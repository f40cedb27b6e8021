package dispatchers

// CommandFunc is the action behind a function-backed command.
type CommandFunc func(ctx *InvocationContext) error

// CommandSpec describes a function-backed command.
type CommandSpec struct {
	Name        string
	Usage       string
	Syntax      string
	Description string
	Action      CommandFunc
}

type specCommand struct {
	spec CommandSpec
}

// NewCommand builds a Command from spec. Empty metadata falls back to the
// package defaults. A nil Action makes the command a no-op.
func NewCommand(spec CommandSpec) Command {
	return &specCommand{spec: spec}
}

func (c *specCommand) Name() string        { return c.spec.Name }
func (c *specCommand) Usage() string       { return c.spec.Usage }
func (c *specCommand) Syntax() string      { return c.spec.Syntax }
func (c *specCommand) Description() string { return c.spec.Description }

func (c *specCommand) Execute(ctx *InvocationContext) error {
	if c.spec.Action == nil {
		return nil
	}
	return c.spec.Action(ctx)
}

var (
	_ Command   = (*specCommand)(nil)
	_ Usager    = (*specCommand)(nil)
	_ Syntaxer  = (*specCommand)(nil)
	_ Describer = (*specCommand)(nil)
)
