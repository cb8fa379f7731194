package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// appDirName is the directory created under the user config dir.
const appDirName = "Miscord"

// ResolveDataPath returns the absolute config directory. An explicit path
// wins, with a leading ~ and $VAR references expanded; otherwise the
// per-user config directory (e.g. ~/.config/Miscord) is used.
func ResolveDataPath(explicit string) (string, error) {
	dir := expandPath(explicit)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("error resolving user config dir: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("error resolving config dir %s: %w", dir, err)
	}

	return abs, nil
}

// ConfigFile returns the config.json path inside dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") || strings.HasPrefix(expanded, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[1:])
	}

	return expanded
}
