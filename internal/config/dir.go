// Package config resolves readmegen settings from defaults, YAML config
// files, .env files, the environment and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user config directory.
const appName = "readmegen"

// Dir returns the readmegen configuration directory.
//
// Resolution:
//   - $READMEGEN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/readmegen if set
//   - %AppData%/readmegen on Windows
//   - ~/.config/readmegen elsewhere
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("READMEGEN_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// GlobalFile returns the path of the per-user config file, or "".
func GlobalFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
