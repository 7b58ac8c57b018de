// Package bubbletea provides a terminal UI for navigating a diff and
// selecting hunks or lines from it, using the Bubble Tea framework.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.Viewer = (*Viewer)(nil)

// Viewer implements diffselect.Viewer using a Bubble Tea TUI.
type Viewer struct {
	modelOpts []ModelOption
	progOpts  []tea.ProgramOption
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithModelOptions sets the options applied to the model each time View
// runs.
func WithModelOptions(opts ...ModelOption) ViewerOption {
	return func(v *Viewer) {
		v.modelOpts = append(v.modelOpts, opts...)
	}
}

// WithProgramOptions sets extra Bubble Tea program options, mainly for
// tests that need custom input and output.
func WithProgramOptions(opts ...tea.ProgramOption) ViewerOption {
	return func(v *Viewer) {
		v.progOpts = append(v.progOpts, opts...)
	}
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the provider's diff and blocks until the user exits or
// the context is cancelled.
func (v *Viewer) View(ctx context.Context, provider diffselect.Provider) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := NewModel(provider, v.modelOpts...)
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, v.progOpts...)
	p := tea.NewProgram(m, opts...)

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	select {
	case <-ctx.Done():
		p.Kill()
		<-done
		return ctx.Err()
	case err := <-done:
		return err
	}
}
