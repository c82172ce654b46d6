package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigEnv overrides the config file location when no flag is given.
const ConfigEnv = "TIMEHANDLER_CONFIG"

// ConfigFileName is the file looked up under the user config directory.
const ConfigFileName = "timehandler.yaml"

// ExpandHomePath expands a leading ~/ to the user's home directory.
// Anything else, or a failed home lookup, returns path unchanged.
func ExpandHomePath(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, rest)
}

// ResolvePath expands ~ and resolves relative paths against basePath.
// Absolute paths are returned unchanged.
func ResolvePath(path, basePath string) string {
	expandedPath := ExpandHomePath(path)
	if filepath.IsAbs(expandedPath) {
		return expandedPath
	}
	return filepath.Join(basePath, expandedPath)
}

// ConfigPath picks the config file: explicit flag value, then the
// TIMEHANDLER_CONFIG variable, then <user config dir>/timehandler/timehandler.yaml.
// The result is absolute; the file need not exist.
func ConfigPath(flagValue string) (string, error) {
	path := flagValue
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, "timehandler", ConfigFileName)
	}
	return filepath.Abs(ExpandHomePath(path))
}
