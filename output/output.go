// Package output implements the best-effort clipboard and file-download collaborators.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/palettekit/palettekit/filesystem"
	"github.com/palettekit/palettekit/util"
)

// Clipboard writes text to the system clipboard.
type Clipboard struct{}

// Copy fails when no clipboard utility is available (e.g. a headless session).
func (Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	return clipboard.WriteAll(text)
}

// Files saves downloads into a directory.
type Files struct {
	Dir string
}

// Download writes data to Dir/filename and returns the full path.
func (f Files) Download(filename string, data []byte) (string, error) {
	name := util.SanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	if err := filesystem.API().MkdirAll(f.Dir, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(f.Dir, name)
	if err := filesystem.API().WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
