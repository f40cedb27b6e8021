package log

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// lineFormat is the console encoder layout the logs command parses.
var lineFormat = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\t(DEBUG|INFO|WARN|ERROR)\t(.*)$`)

func newFileLogger(t *testing.T, level Level) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parallax.log")
	logger, err := New(path, level)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, path
}

// readLines closes logger and returns the file's lines.
func readLines(t *testing.T, logger *Logger, path string) []string {
	t.Helper()
	require.NoError(t, logger.Close())
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}

func TestNew_ConsoleLineFormat(t *testing.T) {
	logger, path := newFileLogger(t, LevelDebug)
	before := time.Now().Truncate(time.Second)

	logger.Debug("dispatchers: submitting %q", "echo hi")
	logger.Info("app: ready")
	logger.Warn("config: using defaults: %v", "no file")
	logger.Error("command %s failed", "load")

	lines := readLines(t, logger, path)
	require.Len(t, lines, 4)

	want := []struct {
		level   string
		message string
	}{
		{"DEBUG", `dispatchers: submitting "echo hi"`},
		{"INFO", "app: ready"},
		{"WARN", "config: using defaults: no file"},
		{"ERROR", "command load failed"},
	}
	for i, line := range lines {
		m := lineFormat.FindStringSubmatch(line)
		require.NotNil(t, m, "line %q", line)
		assert.Equal(t, want[i].level, m[2])
		assert.Equal(t, want[i].message, m[3])

		ts, err := time.ParseInLocation("2006-01-02 15:04:05", m[1], time.Local)
		require.NoError(t, err)
		assert.False(t, ts.Before(before), "timestamp %s", m[1])
	}
}

func TestNew_NoCallerOrStacktrace(t *testing.T) {
	logger, path := newFileLogger(t, LevelDebug)

	logger.Error("boom")

	lines := readLines(t, logger, path)
	require.Len(t, lines, 1)
	assert.Len(t, strings.Split(lines[0], "\t"), 3)
}

func TestNew_LevelFiltering(t *testing.T) {
	logger, path := newFileLogger(t, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	var levels []string
	for _, line := range readLines(t, logger, path) {
		m := lineFormat.FindStringSubmatch(line)
		require.NotNil(t, m)
		levels = append(levels, m[2])
	}
	assert.Equal(t, []string{"WARN", "ERROR"}, levels)
}

func TestNew_Permissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	path := filepath.Join(dir, "parallax.log")

	logger, err := New(path, LevelInfo)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	info, err = os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700)|os.ModeDir, info.Mode())
}

func TestNew_TightensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parallax.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	logger, err := New(path, LevelInfo)
	require.NoError(t, err)
	logger.Info("new")

	lines := readLines(t, logger, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "old", lines[0])
	assert.Regexp(t, lineFormat, lines[1])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNew_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parallax.log")

	for _, msg := range []string{"first", "second"} {
		logger, err := New(path, LevelInfo)
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, logger.Close())
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "\tINFO\tfirst"))
	assert.True(t, strings.HasSuffix(lines[1], "\tINFO\tsecond"))
}

func TestNew_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "afile")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, err := New(filepath.Join(file, "sub", "parallax.log"), LevelInfo)
	require.ErrorContains(t, err, "create log directory")

	if os.Getuid() == 0 {
		t.Skip("root can write into read-only directories")
	}
	readOnly := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.Mkdir(readOnly, 0500))

	_, err = New(filepath.Join(readOnly, "parallax.log"), LevelInfo)
	require.ErrorContains(t, err, "open log file")
}

func TestLogger_SetEnabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core)

	logger.Info("enabled")
	logger.SetEnabled(false)
	logger.Info("disabled")
	logger.SetEnabled(true)
	logger.Info("enabled again")

	var got []string
	for _, e := range logs.AllUntimed() {
		got = append(got, e.Message)
	}
	assert.Equal(t, []string{"enabled", "enabled again"}, got)
}

func TestLogger_SetLevelIsAtomic(t *testing.T) {
	logger, path := newFileLogger(t, LevelError)

	logger.Info("hidden")
	logger.SetLevel(LevelInfo)
	assert.True(t, logger.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Zap().Core().Enabled(zapcore.DebugLevel))
	logger.Info("visible")

	lines := readLines(t, logger, path)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "\tINFO\tvisible"))
}

func TestNewWithCore_RecordsFormattedMessages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core)

	logger.Debug("dispatch %q", "echo hi")
	logger.Warn("slow %s", "load")
	logger.Error("command %s failed: %v", "echo", "boom")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, `dispatch "echo hi"`, entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "command echo failed: boom", entries[2].Message)
	for _, e := range entries {
		assert.Empty(t, e.Context)
	}
}

func TestLogger_WriterTrimsNewline(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core)

	n, err := logger.Writer(LevelWarn).Write([]byte("from writer\n"))
	require.NoError(t, err)
	assert.Equal(t, len("from writer\n"), n)

	entries := logs.FilterLevelExact(zapcore.WarnLevel).AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "from writer", entries[0].Message)
}

func TestLogger_Nil(t *testing.T) {
	var logger *Logger

	assert.NotPanics(t, func() {
		logger.SetEnabled(true)
		logger.SetLevel(LevelDebug)
		logger.Debug("x")
		logger.Info("x")
		logger.Warn("x")
		logger.Error("x")
	})
	assert.NoError(t, logger.Close())
	assert.NotNil(t, logger.Zap())
}

func TestLogger_CloseTwice(t *testing.T) {
	logger, _ := newFileLogger(t, LevelInfo)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
}

func TestGlobalLogger(t *testing.T) {
	saved := GetLogger()
	t.Cleanup(func() { SetDefault(saved) })

	SetDefault(nil)
	assert.NotPanics(t, func() {
		Debug("dropped")
		Error("dropped")
	})
	assert.NoError(t, Close())
	assert.Nil(t, GetLogger())

	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewWithCore(core)
	SetDefault(logger)
	require.Same(t, logger, GetLogger())

	Debug("below level")
	Info("info %d", 1)
	Warn("warn %d", 2)
	Error("error %d", 3)

	var got []string
	for _, e := range logs.AllUntimed() {
		got = append(got, e.Level.CapitalString()+" "+e.Message)
	}
	assert.Equal(t, []string{"INFO info 1", "WARN warn 2", "ERROR error 3"}, got)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"Debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevel_MatchesZapLevel(t *testing.T) {
	tests := []struct {
		level Level
		zap   zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.zap, tt.level.zapLevel())
		assert.Equal(t, tt.zap.CapitalString(), tt.level.String())
	}
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}

	assert.NotPanics(t, func() {
		nop.Debug("test %s", "debug")
		nop.Error("test %s", "error")
	})
	assert.NoError(t, nop.Close())
}
