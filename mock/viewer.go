package mock

import (
	"context"

	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of diffselect.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, provider diffselect.Provider) error
}

func (v *Viewer) View(ctx context.Context, provider diffselect.Provider) error {
	return v.ViewFn(ctx, provider)
}
