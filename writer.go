package okie

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes content to path below root and returns the written path.
// The parent directory of the unsubstituted path is created first, then
// PathPlaceholder is replaced with ctx.Name. Existing files are overwritten.
// An empty root means the current working directory.
func WriteFile(root, path string, content []byte, ctx Context) (string, error) {
	if err := ensureParent(filepath.Join(root, path)); err != nil {
		return "", err
	}
	rendered := RenderPath(path, ctx)
	final := filepath.Join(root, rendered)
	if rendered != path {
		// The placeholder may sit in a directory segment.
		if err := ensureParent(final); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(final, content, filePerm); err != nil { // #nosec G306 -- scaffolded files are meant to be world-readable
		return "", fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return final, nil
}

func ensureParent(path string) error {
	parent := filepath.Dir(path)
	if parent == "." {
		return nil
	}
	if info, err := os.Stat(parent); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDir, err)
	}
	return nil
}
