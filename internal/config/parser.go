package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns rc file lines into a key/value map. Blank lines and lines
// starting with '#' are skipped. A '#' preceded by whitespace starts an
// inline comment. Values wrapped in double quotes are unquoted. When a key
// appears more than once the last value wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := splitEntry(trimmed)
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, trimmed)
		}
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = value
	}

	return cfg, nil
}

// splitEntry splits a trimmed "key=value # comment" line.
func splitEntry(line string) (key, value string, ok bool) {
	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	v, _ = splitComment(v)
	return strings.TrimSpace(k), unquote(strings.TrimSpace(v)), true
}

// splitComment separates a value from a trailing " # comment".
func splitComment(v string) (value, comment string) {
	if strings.HasPrefix(strings.TrimSpace(v), "\"") {
		// the comment, if any, follows the closing quote
		open := strings.Index(v, "\"")
		if end := strings.Index(v[open+1:], "\""); end >= 0 {
			cut := open + 1 + end + 1
			rest := v[cut:]
			if idx := commentIndex(rest); idx >= 0 {
				return v[:cut], strings.TrimSpace(rest[idx:])
			}
			return v, ""
		}
	}

	if idx := commentIndex(v); idx >= 0 {
		return v[:idx], strings.TrimSpace(v[idx:])
	}
	return v, ""
}

func commentIndex(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] == '#' && (s[i-1] == ' ' || s[i-1] == '\t') {
			return i
		}
	}
	return -1
}

func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, "\"") && strings.HasSuffix(v, "\"") {
		return v[1 : len(v)-1]
	}
	return v
}

// quote wraps values containing spaces or '#' so Parse reads them back intact.
func quote(v string) string {
	if strings.ContainsAny(v, " \t#") {
		return "\"" + v + "\""
	}
	return v
}
