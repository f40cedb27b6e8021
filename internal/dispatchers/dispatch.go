package dispatchers

import (
	"fmt"
	"strings"
)

// LockPolicy decides whether a command executes under the registry lock.
type LockPolicy int

const (
	// LockPolicyHold runs Execute with the registry lock held. Registry
	// changes can never interleave with a running command, at the cost of
	// stalling every other dispatch and registry call until it returns.
	LockPolicyHold LockPolicy = iota

	// LockPolicySnapshot looks the command up under the lock and executes
	// it after releasing the lock. A command unregistered mid-flight still
	// finishes on the reference it was dispatched with.
	LockPolicySnapshot
)

func (p LockPolicy) String() string {
	switch p {
	case LockPolicyHold:
		return "hold"
	case LockPolicySnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("LockPolicy(%d)", int(p))
	}
}

// ParseLockPolicy converts "hold" or "snapshot" (case insensitive).
func ParseLockPolicy(s string) (LockPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hold":
		return LockPolicyHold, nil
	case "snapshot":
		return LockPolicySnapshot, nil
	default:
		return LockPolicyHold, fmt.Errorf("dispatchers: unknown lock policy %q", s)
	}
}

// ProcessCommand parses raw, looks the command up and executes it.
//
// A lookup miss writes one "Command not found" message to the output sink
// and returns nil. An error from Execute is returned unchanged.
func (e *Engine) ProcessCommand(raw string) error {
	result := e.parser.Parse(raw)

	if e.policy == LockPolicySnapshot {
		return e.processSnapshot(result)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	cmd, ok := e.commands.lookup(result.Name())
	if !ok {
		e.output.Error(e.notFoundMessage(result.Name()))
		return nil
	}

	return e.execute(cmd, newInvocationContext(e, result, true))
}

func (e *Engine) processSnapshot(result ParseResult) error {
	e.mu.Lock()
	cmd, ok := e.commands.lookup(result.Name())
	var miss string
	if !ok {
		miss = e.notFoundMessage(result.Name())
	}
	e.mu.Unlock()

	if !ok {
		e.output.Error(miss)
		return nil
	}

	return e.execute(cmd, newInvocationContext(e, result, false))
}

func (e *Engine) execute(cmd Command, ctx *InvocationContext) error {
	e.logger.Debug("dispatchers: executing %q (invocation %s)", ctx.ParseResult().String(), ctx.ID())
	err := cmd.Execute(ctx)
	if err != nil {
		e.logger.Debug("dispatchers: invocation %s failed: %v", ctx.ID(), err)
	}
	return err
}
