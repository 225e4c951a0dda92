package utils

import (
	"os"
	"path/filepath"
)

// AppName is used for the per-user config directory.
const AppName = "linux-confetti"

// ConfigSearchDirs lists where relative config paths are looked up, in order.
func ConfigSearchDirs() []string {
	dirs := []string{".", "assets"}

	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, AppName))
	}

	dirs = append(dirs, filepath.Join("/usr/share", AppName))
	return dirs
}

// ResolveConfigPath finds relPath in the search dirs. Absolute paths are
// returned as is. The second return value reports whether the file exists.
func ResolveConfigPath(relPath string) (string, bool) {
	if relPath == "" {
		return "", false
	}

	if filepath.IsAbs(relPath) {
		_, err := os.Stat(relPath)
		return relPath, err == nil
	}

	for _, dir := range ConfigSearchDirs() {
		p := filepath.Join(dir, relPath)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}

	return relPath, false
}
