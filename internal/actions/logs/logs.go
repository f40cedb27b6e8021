// Package logs shows and clears the console's log file.
package logs

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/footprint-tools/parallax/internal/ui/style"
	"github.com/footprint-tools/parallax/internal/usage"
)

const defaultLogLimit = 50

// View prints the last lines of the log file. An optional first argument
// sets how many.
func View(args []string, deps Deps) error {
	limit, err := parseLimit(args)
	if err != nil {
		return err
	}

	lines, ok, err := readLines(deps)
	if err != nil || !ok {
		return err
	}

	for _, line := range tail(lines, limit) {
		_, _ = deps.Println(colorizeLogLine(line))
	}
	return nil
}

// JSON prints the last lines of the log file as a JSON array.
func JSON(args []string, deps Deps) error {
	limit, err := parseLimit(args)
	if err != nil {
		return err
	}

	lines, ok, err := readLines(deps)
	if err != nil {
		return err
	}
	if !ok {
		lines = nil
	}

	type logEntry struct {
		Timestamp string `json:"timestamp,omitempty"`
		Level     string `json:"level,omitempty"`
		Message   string `json:"message"`
	}

	entries := make([]logEntry, 0, len(lines))
	for _, line := range tail(lines, limit) {
		if m := logEntryRegex.FindStringSubmatch(line); m != nil {
			entries = append(entries, logEntry{Timestamp: m[1], Level: m[2], Message: m[3]})
		} else {
			entries = append(entries, logEntry{Message: line})
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Clear empties the log file.
func Clear(_ []string, deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

// logEntryRegex matches lines like: 2026-01-29 10:30:45	INFO	message
var logEntryRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\t(DEBUG|INFO|WARN|ERROR)\t(.*)$`)

func parseLimit(args []string) (int, error) {
	if len(args) == 0 {
		return defaultLogLimit, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, usage.InvalidConfigValue("lines", args[0], "a positive number")
	}
	return n, nil
}

// readLines returns false without an error when there is nothing to show;
// the reason has already been printed.
func readLines(deps Deps) ([]string, bool, error) {
	path := deps.LogFilePath()

	info, err := deps.Stat(path)
	if os.IsNotExist(err) {
		_, _ = deps.Println(style.Muted("No log file found at " + path))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() == 0 {
		_, _ = deps.Println(style.Muted("Log file is empty"))
		return nil, false, nil
	}

	content, err := deps.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read log file: %w", err)
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"), true, nil
}

func tail(lines []string, limit int) []string {
	if len(lines) > limit {
		return lines[len(lines)-limit:]
	}
	return lines
}

func colorizeLogLine(line string) string {
	m := logEntryRegex.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	switch m[2] {
	case "ERROR":
		return style.Error(line)
	case "WARN":
		return style.Warning(line)
	case "INFO":
		return style.Info(line)
	default:
		return style.Muted(line)
	}
}
