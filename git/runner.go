// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Diff returns the unified diff for the repository at repoPath. When
// staged is true it returns the index diff (git diff --cached) instead
// of the working tree diff.
func (r *Runner) Diff(ctx context.Context, repoPath string, staged bool) (string, error) {
	args := []string{"-C", repoPath, "diff"}
	if staged {
		args = append(args, "--cached")
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git diff failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git diff failed: %w", err)
	}
	return string(output), nil
}

// Apply applies patch to the repository at repoPath. When cached is true
// the patch is applied to the index, which is how a selection gets
// staged without touching the working tree.
func (r *Runner) Apply(ctx context.Context, repoPath string, patch string, cached bool) error {
	args := []string{"-C", repoPath, "apply"}
	if cached {
		args = append(args, "--cached")
	}
	args = append(args, "-")
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdin = strings.NewReader(patch)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git apply failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}
