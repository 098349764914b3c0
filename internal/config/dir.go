// Package config resolves commitstamp's configuration directory and loads
// its optional YAML config file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "commitstamp"

// Dir returns the commitstamp configuration directory.
//
// Resolution:
//   - $COMMITSTAMP_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/commitstamp if set (respects XDG on any platform)
//   - %AppData%/commitstamp on Windows
//   - ~/.config/commitstamp on macOS and Linux
func Dir() string {
	if dir := os.Getenv("COMMITSTAMP_CONFIG_HOME"); dir != "" {
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

// DefaultPath returns the config file location inside Dir, or "" when no
// configuration directory can be determined.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
