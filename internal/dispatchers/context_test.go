package dispatchers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestInvocationContext_Accessors(t *testing.T) {
	e, sink := newTestEngine(t)
	result := NewParseResult("Echo", []string{"a", "b"})

	ctx := NewInvocationContext(e, result)

	require.Same(t, e, ctx.Engine())
	require.Equal(t, "Echo", ctx.CommandName())
	require.Equal(t, []string{"a", "b"}, ctx.Arguments())
	require.Equal(t, result, ctx.ParseResult())
	require.NotEqual(t, uuid.Nil, ctx.ID())
	require.NotNil(t, ctx.Logger())

	ctx.Output().Info("hi")
	require.Equal(t, []string{"hi"}, sink.infos)

	args := ctx.Arguments()
	args[0] = "changed"
	require.Equal(t, []string{"a", "b"}, ctx.Arguments())
}

func TestInvocationContext_UniqueIDs(t *testing.T) {
	e, _ := newTestEngine(t)
	a := NewInvocationContext(e, NewParseResult("x", nil))
	b := NewInvocationContext(e, NewParseResult("x", nil))

	require.NotEqual(t, a.ID(), b.ID())
}

func TestInvocationContext_RegistryReads(t *testing.T) {
	e, _ := newTestEngine(t)
	cmd := NewCommand(CommandSpec{Name: "help"})
	_, err := e.Register(cmd)
	require.NoError(t, err)

	ctx := NewInvocationContext(e, NewParseResult("help", nil))
	require.Len(t, ctx.Commands(), 1)

	got, ok := ctx.Lookup("HELP")
	require.True(t, ok)
	require.Same(t, cmd, got)
}

func TestInvocationContext_RegistryReadsUnderHold(t *testing.T) {
	e, _ := newTestEngine(t, WithLockPolicy(LockPolicyHold))

	var seen []string
	var found bool
	_, err := e.Register(NewCommand(CommandSpec{
		Name: "list",
		Action: func(ctx *InvocationContext) error {
			seen = names(ctx.Commands())
			_, found = ctx.Lookup("LIST")
			return nil
		},
	}))
	require.NoError(t, err)

	require.NoError(t, e.ProcessCommand("list"))
	require.Equal(t, []string{"list"}, seen)
	require.True(t, found)
}
