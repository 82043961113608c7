package server

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot returns the absolute serving root for dir.
// An empty dir resolves to the directory containing the running executable.
// The result must be an existing directory.
func ResolveRoot(dir string) (string, error) {
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("failed to locate executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir = filepath.Dir(exe)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve serving root %q: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("serving root unavailable: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("serving root %s is not a directory", abs)
	}
	return abs, nil
}
