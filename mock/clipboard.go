package mock

import "github.com/fwojciec/diffselect"

// Compile-time interface verification.
var _ diffselect.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of diffselect.Clipboard.
type Clipboard struct {
	CopyFn func(text string) error
}

func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}
