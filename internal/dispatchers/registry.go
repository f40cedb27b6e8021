package dispatchers

import (
	"reflect"
	"strings"
)

// registry is the ordered command list. It does no locking of its own; every
// method is called with Engine.mu held.
type registry struct {
	commands []Command
}

func (r *registry) indexOf(name string) int {
	for i, c := range r.commands {
		if strings.EqualFold(c.Name(), name) {
			return i
		}
	}
	return -1
}

// add removes any command with the same case-insensitive name, then appends.
func (r *registry) add(cmd Command) {
	if i := r.indexOf(cmd.Name()); i >= 0 {
		r.commands = append(r.commands[:i], r.commands[i+1:]...)
	}
	r.commands = append(r.commands, cmd)
}

func (r *registry) remove(cmd Command) bool {
	for i, c := range r.commands {
		if sameCommand(c, cmd) {
			r.commands = append(r.commands[:i], r.commands[i+1:]...)
			return true
		}
	}
	return false
}

func (r *registry) removeName(name string) bool {
	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	r.commands = append(r.commands[:i], r.commands[i+1:]...)
	return true
}

func (r *registry) lookup(name string) (Command, bool) {
	i := r.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return r.commands[i], true
}

func (r *registry) snapshot() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

func (r *registry) names() []string {
	out := make([]string, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Name()
	}
	return out
}

// sameCommand reports reference identity. Values of uncomparable dynamic
// types never match instead of panicking.
func sameCommand(a, b Command) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// isNil also catches a nil pointer stored in a non-nil interface, whose
// Name would panic.
func isNil(cmd Command) bool {
	if cmd == nil {
		return true
	}
	v := reflect.ValueOf(cmd)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Register adds cmd, replacing any command whose name matches
// case-insensitively. The replacement is a single critical section, so a
// concurrent lookup sees either the old or the new command.
func (e *Engine) Register(cmd Command) (bool, error) {
	if isNil(cmd) {
		return false, ErrNilCommand
	}
	if strings.TrimSpace(cmd.Name()) == "" {
		return false, ErrEmptyCommandName
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.commands.add(cmd)
	e.logger.Debug("dispatchers: registered command %q", cmd.Name())
	return true, nil
}

// Unregister removes cmd by identity.
func (e *Engine) Unregister(cmd Command) bool {
	if cmd == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commands.remove(cmd)
}

// UnregisterName removes the command whose name matches case-insensitively.
func (e *Engine) UnregisterName(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commands.removeName(name)
}

// Lookup finds a command by case-insensitive name.
func (e *Engine) Lookup(name string) (Command, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commands.lookup(name)
}

// Commands returns a snapshot of the registered commands in registration
// order. Modifying the returned slice does not affect the engine.
func (e *Engine) Commands() []Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commands.snapshot()
}

// Len returns the number of registered commands.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.commands.commands)
}
