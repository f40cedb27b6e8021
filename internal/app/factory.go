// Package app wires configuration, logging, styling and the dispatch engine
// into a ready-to-start console.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/executor"
	"github.com/footprint-tools/parallax/internal/input"
	"github.com/footprint-tools/parallax/internal/log"
	"github.com/footprint-tools/parallax/internal/ui"
	"github.com/footprint-tools/parallax/internal/ui/style"
	"github.com/footprint-tools/parallax/internal/usage"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Config is the file the settings came from; the console "config"
	// command edits it. Nil means the default location.
	Config   *config.Provider
	Settings config.Settings

	// Input defaults to a console on stdin.
	Input dispatchers.InputSource

	// Out and ErrOut default to stdout and stderr. Ignored when Output is set.
	Out    io.Writer
	ErrOut io.Writer
	Output dispatchers.OutputSink

	// Logger overrides the file logger built from Settings.
	Logger domain.Logger

	StyleEnabled bool
}

// DefaultOptions loads settings from the default config file.
func DefaultOptions() (Options, error) {
	provider := config.NewProvider()
	settings, err := provider.Settings()
	if err != nil {
		return Options{}, wrapConfigError(err)
	}
	return Options{
		Config:       provider,
		Settings:     settings,
		StyleEnabled: settings.Color != config.ColorNever,
	}, nil
}

// LoadOptions loads settings from the config file at path, or from the
// default location when path is empty.
func LoadOptions(path string) (Options, error) {
	if path == "" {
		return DefaultOptions()
	}
	provider := config.NewProviderAt(path)
	settings, err := provider.Settings()
	if err != nil {
		return Options{}, wrapConfigError(err)
	}
	return Options{
		Config:       provider,
		Settings:     settings,
		StyleEnabled: settings.Color != config.ColorNever,
	}, nil
}

func wrapConfigError(err error) error {
	var usageErr *usage.Error
	if errors.As(err, &usageErr) {
		return err
	}
	return usage.FailedConfigPath(err)
}

// Application is a wired console. Start it with Engine.Start and release
// it with Close.
type Application struct {
	Engine   *dispatchers.Engine
	Config   *config.Provider
	Settings config.Settings
	Logger   domain.Logger
	Output   dispatchers.OutputSink
	Styler   domain.Styler
	Executor dispatchers.Executor

	closers []func() error
}

// New creates an Application with all dependencies wired up and the
// bundled commands registered.
func New(opts Options) (*Application, error) {
	s := opts.Settings
	a := &Application{
		Config:   opts.Config,
		Settings: s,
	}
	if a.Config == nil {
		a.Config = config.NewProvider()
	}

	a.Logger = opts.Logger
	if a.Logger == nil {
		a.Logger = newLogger(s)
		a.closers = append(a.closers, a.Logger.Close)
	}

	style.Init(opts.StyleEnabled, s.Colors)
	a.Styler = style.NewStyler()

	a.Output = opts.Output
	if a.Output == nil {
		out, errOut := opts.Out, opts.ErrOut
		if out == nil {
			out = os.Stdout
		}
		if errOut == nil {
			errOut = os.Stderr
		}
		a.Output = ui.NewWriterTo(out, ui.WithErrorOutput(errOut), ui.WithStyler(a.Styler))
	}

	in := opts.Input
	if in == nil {
		console, err := input.NewConsole(os.Stdin)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("app: open console: %w", err)
		}
		in = console
		a.closers = append(a.closers, console.Close)
	}

	x, closeExecutor := NewExecutor(s,
		executor.WithLogger(a.Logger),
		executor.WithErrorHandler(ReportErrors(a.Output, a.Logger)),
	)
	a.Executor = x
	if closeExecutor != nil {
		a.closers = append([]func() error{closeExecutor}, a.closers...)
	}

	engine, err := dispatchers.New(in, a.Output, NewParser(s.Parser), x,
		dispatchers.WithLogger(a.Logger),
		dispatchers.WithLockPolicy(s.DispatchLock),
		dispatchers.WithSuggestions(s.Suggestions),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Engine = engine

	if err := RegisterBuiltins(engine, a.Config, s.LogFile); err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Logger.Debug("app: ready (executor=%s parser=%s dispatch_lock=%s)", s.Executor, s.Parser, s.DispatchLock)
	return a, nil
}

// NewForTesting creates an Application on the given input and output with
// the inline executor, no logging and no styling.
func NewForTesting(in dispatchers.InputSource, out dispatchers.OutputSink) (*Application, error) {
	s, err := config.Load(map[string]string{"executor": config.ExecutorInline, "enable_log": "false"})
	if err != nil {
		return nil, err
	}
	return New(Options{
		Settings: s,
		Input:    in,
		Output:   out,
		Logger:   log.NopLogger{},
	})
}

func newLogger(s config.Settings) domain.Logger {
	if !s.EnableLog || s.LogFile == "" {
		return log.NopLogger{}
	}
	l, err := log.New(s.LogFile, s.LogLevel)
	if err != nil {
		return log.NopLogger{}
	}
	log.SetDefault(l)
	return l
}

// Close stops the reader, lets queued commands finish and releases the
// logger and console. It is safe to call on a partially built Application.
func (a *Application) Close() error {
	if a.Engine != nil {
		a.Engine.Interrupt()
		a.Engine.Wait()
	}

	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	if a.Logger == log.GetLogger() {
		log.SetDefault(nil)
	}
	return errors.Join(errs...)
}
