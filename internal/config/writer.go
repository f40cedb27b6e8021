package config

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/footprint-tools/parallax/internal/paths"
)

// WriteLines replaces the rc file at the default location.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	return WriteLinesTo(configPath, lines)
}

// WriteLinesTo atomically replaces configPath with lines: the content goes
// to a temp file in the same directory which is then renamed over the target.
func WriteLinesTo(configPath string, lines []string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(configPath), "."+filepath.Base(configPath)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}

	w := bufio.NewWriter(tmpFile)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		return err
	}

	success = true
	return nil
}
