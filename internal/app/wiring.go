package app

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/parallax/internal/actions"
	actionsconfig "github.com/footprint-tools/parallax/internal/actions/config"
	"github.com/footprint-tools/parallax/internal/actions/logs"
	"github.com/footprint-tools/parallax/internal/actions/theme"
	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/executor"
	"github.com/footprint-tools/parallax/internal/usage"
)

// NewParser returns the parser for a settings name; unknown names get the
// simple parser.
func NewParser(name string) dispatchers.Parser {
	if name == config.ParserShell {
		return dispatchers.ShellParser{}
	}
	return dispatchers.SimpleParser{}
}

// NewExecutor builds the executor selected by s. The returned close
// function waits for outstanding tasks; it is nil for the inline executor.
func NewExecutor(s config.Settings, opts ...executor.Option) (dispatchers.Executor, func() error) {
	switch s.Executor {
	case config.ExecutorInline:
		return executor.NewInline(opts...), nil
	case config.ExecutorGoroutine:
		g := executor.NewGoroutine(opts...)
		return g, func() error {
			g.Wait()
			return nil
		}
	case config.ExecutorPool:
		p := executor.NewPool(s.Workers, append(opts, executor.WithQueueSize(s.QueueSize))...)
		return p, p.Close
	default:
		p := executor.NewSingle(append(opts, executor.WithQueueSize(s.QueueSize))...)
		return p, p.Close
	}
}

// ReportErrors returns an executor error handler that logs the failure and
// shows a one-line message on the output sink.
func ReportErrors(out dispatchers.OutputSink, logger domain.Logger) executor.ErrorHandler {
	return func(err error) {
		var pe *executor.PanicError
		if errors.As(err, &pe) {
			logger.Error("%v\n%s", pe, pe.Stack)
			out.Error(fmt.Sprintf("Command panicked: %v", pe.Value))
			return
		}

		logger.Error("%v", err)

		var usageErr *usage.Error
		if errors.As(err, &usageErr) {
			out.Error(usageErr.Message)
			return
		}
		if errors.Is(err, executor.ErrExecutorClosed) {
			out.Error("Console is shutting down; command dropped.")
			return
		}
		out.Error("Error: " + commandError(err).Error())
	}
}

// commandError strips the reader's dispatch wrapper so users see the
// command's own message with its context intact.
func commandError(err error) error {
	var de *dispatchers.DispatchError
	if errors.As(err, &de) && de.Err != nil {
		return de.Err
	}
	return err
}

// RegisterDefaultHelpCommand registers the help command.
func RegisterDefaultHelpCommand(e *dispatchers.Engine) error {
	_, err := e.Register(actions.NewHelp())
	return err
}

// RegisterBuiltins registers help, version, echo, quit and exit, plus
// config and theme when provider is set and logs when logFile is.
func RegisterBuiltins(e *dispatchers.Engine, provider *config.Provider, logFile string) error {
	cmds := actions.Builtins(Version)
	if provider != nil {
		cmds = append(cmds,
			actionsconfig.NewCommand(actionsconfig.ProviderDeps(provider)),
			theme.NewCommand(theme.ProviderDeps(provider)),
		)
	}
	if logFile != "" {
		cmds = append(cmds, logs.NewCommand(logs.FileDeps(logFile)))
	}
	for _, cmd := range cmds {
		if _, err := e.Register(cmd); err != nil {
			return fmt.Errorf("app: register %s: %w", cmd.Name(), err)
		}
	}
	return nil
}
