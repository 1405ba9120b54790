// Package open launches files with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/palettekit/palettekit/constant"
)

// Start opens path with the default handler without waiting for it to exit.
func Start(path string) error {
	cmd, ok := Command(runtime.GOOS, path)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// Command builds the opener invocation for goos.
func Command(goos, path string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), true
	case constant.Darwin:
		return exec.Command("open", path), true
	case constant.Linux:
		return exec.Command("xdg-open", path), true
	case constant.Android:
		return exec.Command("termux-open", path), true
	default:
		return nil, false
	}
}
