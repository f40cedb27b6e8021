package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "parallax"
	configFileName = ".parallaxrc"
	logFileName    = "parallax.log"

	// ConfigEnvVar overrides the config file location.
	ConfigEnvVar = "PARALLAX_CONFIG"
)

// AppDataDir returns the application data directory for logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns $PARALLAX_CONFIG when set, otherwise ~/.parallaxrc.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LockFilePath returns the lock file guarding writes to the given config file.
func LockFilePath(configPath string) string {
	return configPath + ".lock"
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/parallax/parallax.log
//   - Linux: $XDG_CONFIG_HOME/parallax/parallax.log or ~/.config/parallax/parallax.log
//   - Windows: %AppData%\parallax\parallax.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}
