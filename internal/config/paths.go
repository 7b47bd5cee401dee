package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dataDirName is the per-user directory holding configs, the journal,
// the SSH host key and screenshots.
const dataDirName = ".climber"

// DataDir returns ~/.climber joined with elem.
func DataDir(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(append([]string{home, dataDirName}, elem...)...), nil
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
