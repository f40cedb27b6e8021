package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/footprint-tools/parallax/internal/app"
	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/input"
	"github.com/footprint-tools/parallax/internal/usage"
)

// rootFlags holds the persistent flags. Each one that is set overrides the
// matching config key.
type rootFlags struct {
	configPath   string
	executor     string
	workers      int
	parser       string
	dispatchLock string
	logLevel     string
	noColor      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, err.Error())
	return exitCode(err)
}

func exitCode(err error) int {
	var usageErr *usage.Error
	if errors.As(err, &usageErr) {
		return usageErr.GetExitCode()
	}
	return 1
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "parallax",
		Short: "An interactive command console",
		Long: `parallax reads commands from standard input, one per line, and runs them.

Type 'help' in the console for the list of commands, and 'quit' or 'exit'
to leave. End of input and Ctrl+C also stop the console.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (.parallaxrc, .yaml or .toml)")
	pf.StringVar(&f.executor, "executor", "", "executor: inline, goroutine, single or pool")
	pf.IntVar(&f.workers, "workers", 0, "worker count for the pool executor")
	pf.StringVar(&f.parser, "parser", "", "parser: simple or shell")
	pf.StringVar(&f.dispatchLock, "dispatch-lock", "", "dispatch lock policy: hold or snapshot")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newExecCmd(f),
		newConfigCmd(f),
		newVersionCmd(),
	)
	return root
}

func runConsole(cmd *cobra.Command, f *rootFlags) error {
	opts, err := loadOptions(cmd, f)
	if err != nil {
		return err
	}

	if in := cmd.InOrStdin(); in != os.Stdin {
		console, err := input.NewConsole(in)
		if err != nil {
			return err
		}
		defer console.Close()
		opts.Input = console
	}

	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Engine.Start(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		a.Logger.Info("parallax: signal received, stopping console")
		a.Engine.Interrupt()
	case <-a.Engine.Done():
	}
	return a.Close()
}

func newExecCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run one console command and exit",
		Long: `Runs a single console command, exactly as if it had been typed into the
console, and exits. An unknown command or a failing command exits with a
non-zero status.

Example:
  parallax exec echo hello world
  parallax exec config get executor
  parallax exec -- echo --not-a-flag`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, f, strings.Join(args, " "))
		},
	}
}

func runExec(cmd *cobra.Command, f *rootFlags, line string) error {
	opts, err := loadOptions(cmd, f)
	if err != nil {
		return err
	}
	opts.Settings.Executor = config.ExecutorInline
	opts.Input = dispatchers.InputFunc(func(context.Context) (string, error) {
		return "", io.EOF
	})

	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	name := a.Engine.Parser().Parse(line).Name()
	if name == "" {
		return usage.MissingArgument("command")
	}
	if _, ok := a.Engine.Lookup(name); !ok {
		return usage.UnknownCommand(name)
	}

	if err := a.Engine.ProcessCommand(line); err != nil {
		return usage.CommandFailed(name, err)
	}
	return nil
}

// loadOptions reads the config file and layers the flags that were set on
// top of it.
func loadOptions(cmd *cobra.Command, f *rootFlags) (app.Options, error) {
	provider := config.NewProvider()
	if f.configPath != "" {
		provider = config.NewProviderAt(f.configPath)
	}

	values, err := provider.Values()
	if err != nil {
		return app.Options{}, usage.FailedConfigPath(err)
	}

	settings, err := config.LoadWithOverrides(values, flagOverrides(cmd, f))
	if err != nil {
		return app.Options{}, err
	}

	return app.Options{
		Config:       provider,
		Settings:     settings,
		Out:          cmd.OutOrStdout(),
		ErrOut:       cmd.ErrOrStderr(),
		StyleEnabled: colorEnabled(settings.Color, f.noColor, cmd.OutOrStdout()),
	}, nil
}

func flagOverrides(cmd *cobra.Command, f *rootFlags) map[string]string {
	flags := cmd.Flags()
	overrides := map[string]string{}

	set := func(name, key, value string) {
		if flags.Changed(name) {
			overrides[key] = value
		}
	}
	set("executor", "executor", f.executor)
	set("workers", "workers", strconv.Itoa(f.workers))
	set("parser", "parser", f.parser)
	set("dispatch-lock", "dispatch_lock", f.dispatchLock)
	set("log-level", "log_level", f.logLevel)
	if f.noColor {
		overrides["color"] = config.ColorNever
	}
	return overrides
}

func colorEnabled(mode string, noColor bool, out io.Writer) bool {
	if noColor {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
