package config

import "strings"

// Set replaces the value of key in lines, keeping any inline comment, or
// appends a new entry. It reports whether an existing entry was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + quote(value)

	for i, line := range lines {
		k, rawValue, ok := entryKey(line)
		if !ok || k != key {
			continue
		}

		if _, comment := splitComment(rawValue); comment != "" {
			lines[i] = entry + " " + comment
		} else {
			lines[i] = entry
		}
		return lines, true
	}

	return append(lines, entry), false
}

// Unset drops every entry for key. Comments and blank lines are kept.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := entryKey(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// entryKey returns the key and raw value part of an entry line.
func entryKey(line string) (key, rawValue string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	k, v, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(k), v, true
}
