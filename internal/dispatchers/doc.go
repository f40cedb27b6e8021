// Package dispatchers is the console dispatch engine.
//
// An Engine reads lines from an InputSource on a dedicated goroutine, hands
// each non-empty line to an Executor, and the submitted task parses the line,
// looks the command up in the engine's registry and executes it. The registry
// and the dispatch path share one mutex; see LockPolicy for whether that mutex
// is held while a command runs.
package dispatchers
