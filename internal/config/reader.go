package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/log"
	"github.com/footprint-tools/parallax/internal/paths"
)

// ReadLines reads the rc file at the default location.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return ReadLinesFrom(configPath)
}

// ReadLinesFrom reads the rc file at configPath, creating it with the
// default settings when it does not exist yet.
func ReadLinesFrom(configPath string) ([]string, error) {
	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on %s: %v", configPath, err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = defaultLines()
		if err := WriteLinesTo(configPath, lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// defaultLines renders the visible keys with their defaults, grouped by section.
func defaultLines() []string {
	lines := []string{
		"# parallax configuration",
		"# Edit values below or use: parallax config set <key> <value>",
	}

	section := ""
	for _, key := range domain.VisibleConfigKeys() {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}
		lines = append(lines, key.Name+"="+quote(value))
	}

	return lines
}
