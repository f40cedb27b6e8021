package app

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/executor"
	"github.com/footprint-tools/parallax/internal/input"
	"github.com/footprint-tools/parallax/internal/log"
	"github.com/footprint-tools/parallax/internal/testutil"
	"github.com/footprint-tools/parallax/internal/usage"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PARALLAX_CONFIG", "")
	return dir
}

func TestNewForTesting_RegistersBuiltins(t *testing.T) {
	isolate(t)
	out := testutil.NewRecordingOutput()

	a, err := NewForTesting(input.NewChannel(0), out)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	var names []string
	for _, cmd := range a.Engine.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"help", "version", "echo", "quit", "exit", "config", "theme", "logs"}, names)
	assert.IsType(t, &executor.Inline{}, a.Executor)
}

func TestNew_RunsScriptToEOF(t *testing.T) {
	dir := isolate(t)
	out := testutil.NewRecordingOutput()
	in := input.NewChannel(8)
	for _, line := range []string{"echo one", "", "version", "nope"} {
		require.NoError(t, in.Send(t.Context(), line))
	}
	in.Close()

	s, err := config.Load(map[string]string{"log_file": filepath.Join(dir, "p.log"), "suggestions": "0"})
	require.NoError(t, err)

	a, err := New(Options{Settings: s, Input: in, Output: out})
	require.NoError(t, err)

	require.NoError(t, a.Engine.Start())
	a.Engine.Wait()
	require.NoError(t, a.Close())

	assert.Equal(t, []string{"one", "parallax version " + Version}, out.Infos())
	assert.Equal(t, []string{"Command not found: nope"}, out.Errors())

	_, err = os.Stat(filepath.Join(dir, "p.log"))
	assert.NoError(t, err, "log file should be created")
}

func TestNew_WritesToStreams(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	s, err := config.Load(map[string]string{"enable_log": "false", "executor": "inline"})
	require.NoError(t, err)

	a, err := New(Options{Settings: s, Input: input.NewChannel(0), Out: &stdout, ErrOut: &stderr})
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	require.NoError(t, a.Engine.ProcessCommand("echo hi"))
	require.NoError(t, a.Engine.ProcessCommand("ech"))

	assert.Equal(t, "hi\n", stdout.String())
	assert.Equal(t, "Command not found: ech. Did you mean: echo, exit, help?\n", stderr.String())
}

func TestLoadOptions_FromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "parallax.yaml")
	require.NoError(t, os.WriteFile(path, []byte("executor: pool\nworkers: 2\ncolor: never\n"), 0600))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, config.ExecutorPool, opts.Settings.Executor)
	assert.Equal(t, 2, opts.Settings.Workers)
	assert.False(t, opts.StyleEnabled)
	got, _ := opts.Config.Path()
	assert.Equal(t, path, got)
}

func TestLoadOptions_InvalidValue(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.rc")
	require.NoError(t, os.WriteFile(path, []byte("executor=threads\n"), 0600))

	_, err := LoadOptions(path)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	assert.Equal(t, usage.ErrInvalidConfigValue, usageErr.Kind)
}

func TestLoadOptions_UnreadableFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("executor = \n"), 0600))

	_, err := LoadOptions(path)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	assert.Equal(t, usage.ErrFailedConfigPath, usageErr.Kind)
}

func TestNewExecutor(t *testing.T) {
	tests := []struct {
		name      string
		executor  string
		wantType  any
		wantClose bool
	}{
		{"inline", config.ExecutorInline, &executor.Inline{}, false},
		{"goroutine", config.ExecutorGoroutine, &executor.Goroutine{}, true},
		{"single", config.ExecutorSingle, &executor.Pool{}, true},
		{"pool", config.ExecutorPool, &executor.Pool{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, closeFn := NewExecutor(config.Settings{Executor: tt.executor, Workers: 2, QueueSize: 4})
			assert.IsType(t, tt.wantType, x)
			if !tt.wantClose {
				assert.Nil(t, closeFn)
				return
			}
			require.NotNil(t, closeFn)
			require.NoError(t, closeFn())
		})
	}
}

func TestNewParser(t *testing.T) {
	assert.IsType(t, dispatchers.ShellParser{}, NewParser(config.ParserShell))
	assert.IsType(t, dispatchers.SimpleParser{}, NewParser(config.ParserSimple))
	assert.IsType(t, dispatchers.SimpleParser{}, NewParser("other"))
}

func TestReportErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"usage error", usage.MissingArgument("key"), "parallax: missing required argument 'key'"},
		{"wrapped command error", errors.Join(errors.New("disk full")), "Error: disk full"},
		{
			"dispatch wrapper only",
			&dispatchers.DispatchError{Line: "load", Err: fmt.Errorf("load settings.json: %w", fs.ErrNotExist)},
			"Error: load settings.json: file does not exist",
		},
		{
			"usage error inside dispatch wrapper",
			&dispatchers.DispatchError{Line: "config", Err: usage.MissingArgument("key")},
			"parallax: missing required argument 'key'",
		},
		{"panic", &executor.PanicError{Value: "boom"}, "Command panicked: boom"},
		{"closed", executor.ErrExecutorClosed, "Console is shutting down; command dropped."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := testutil.NewRecordingOutput()
			ReportErrors(out, log.NopLogger{})(tt.err)
			assert.Equal(t, []string{tt.want}, out.Errors())
		})
	}
}

func TestCommandErrorsReachOutput(t *testing.T) {
	isolate(t)
	out := testutil.NewRecordingOutput()
	a, err := NewForTesting(input.NewChannel(0), out)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	_, err = a.Engine.Register(testutil.NewFailingCommand("fail", errors.New("exploded")))
	require.NoError(t, err)

	a.Executor.Execute(func() error { return a.Engine.ProcessCommand("fail") })

	assert.Equal(t, []string{"Error: exploded"}, out.Errors())
}

func TestCommandErrorContextReachesOutput(t *testing.T) {
	isolate(t)
	out := testutil.NewRecordingOutput()
	in := input.NewChannel(1)
	a, err := NewForTesting(in, out)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	_, err = a.Engine.Register(testutil.NewFailingCommand("load",
		fmt.Errorf("load settings.json: %w", fs.ErrNotExist)))
	require.NoError(t, err)

	require.NoError(t, in.Send(t.Context(), "load now"))
	in.Close()
	require.NoError(t, a.Engine.Start())
	a.Engine.Wait()

	assert.Equal(t, []string{"Error: load settings.json: file does not exist"}, out.Errors())
}

func TestClose_Twice(t *testing.T) {
	isolate(t)
	a, err := NewForTesting(input.NewChannel(0), testutil.NewRecordingOutput())
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestRegisterDefaultHelpCommand(t *testing.T) {
	h := testutil.NewHarness(t, nil)

	require.NoError(t, RegisterDefaultHelpCommand(h.Engine))
	require.NoError(t, h.Engine.ProcessCommand("help"))

	require.Equal(t, 1, h.Engine.Len())
	assert.NotEmpty(t, h.Output.Infos())
	assert.Empty(t, h.Output.Errors())
}

func TestRegisterBuiltins_WithoutProvider(t *testing.T) {
	h := testutil.NewHarness(t, nil)

	require.NoError(t, RegisterBuiltins(h.Engine, nil, ""))

	_, ok := h.Engine.Lookup("config")
	assert.False(t, ok)
	_, ok = h.Engine.Lookup("logs")
	assert.False(t, ok)
	assert.Equal(t, 5, h.Engine.Len())
}
