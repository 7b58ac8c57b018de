package mock

import (
	"context"

	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of diffselect.GitRunner.
type GitRunner struct {
	DiffFn  func(ctx context.Context, repoPath string, staged bool) (string, error)
	ApplyFn func(ctx context.Context, repoPath, patch string, cached bool) error
}

func (g *GitRunner) Diff(ctx context.Context, repoPath string, staged bool) (string, error) {
	return g.DiffFn(ctx, repoPath, staged)
}

func (g *GitRunner) Apply(ctx context.Context, repoPath, patch string, cached bool) error {
	return g.ApplyFn(ctx, repoPath, patch, cached)
}
