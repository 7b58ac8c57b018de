// Package mock provides mock implementations of the diffselect
// interfaces for testing.
package mock

import "github.com/fwojciec/diffselect"

// Compile-time interface verification.
var _ diffselect.Provider = (*Provider)(nil)

// Provider is a mock implementation of diffselect.Provider.
type Provider struct {
	DiffFn func() *diffselect.Diff
}

func (p *Provider) Diff() *diffselect.Diff {
	return p.DiffFn()
}
