// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.Clipboard = (*Commander)(nil)

// Commander implements Clipboard by piping content to the platform's
// clipboard command: pbcopy on macOS, wl-copy or xclip on Linux.
type Commander struct{}

// NewCommander returns a new command-backed clipboard.
func NewCommander() *Commander {
	return &Commander{}
}

// Copy writes content to the system clipboard.
func (c *Commander) Copy(content string) error {
	name, args, err := copyCommand()
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// copyCommand picks the first available clipboard command for the platform.
func copyCommand() (string, []string, error) {
	var candidates [][]string
	if runtime.GOOS == "darwin" {
		candidates = [][]string{{"pbcopy"}}
	} else {
		candidates = [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c[0], c[1:], nil
		}
	}
	return "", nil, fmt.Errorf("no clipboard command available for %s", runtime.GOOS)
}
