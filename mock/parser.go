package mock

import (
	"io"

	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.Parser = (*Parser)(nil)

// Parser is a mock implementation of diffselect.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*diffselect.Diff, error)
}

func (p *Parser) Parse(r io.Reader) (*diffselect.Diff, error) {
	return p.ParseFn(r)
}
