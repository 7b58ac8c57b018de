package bubbletea_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/diffselect"
	"github.com/fwojciec/diffselect/bubbletea"
	"github.com/fwojciec/diffselect/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func staticProvider(d *diffselect.Diff) diffselect.Provider {
	return diffselect.ProviderFunc(func() *diffselect.Diff { return d })
}

// threeHunkDiff returns a single-file diff with three hunks, each with a
// unique marker line.
func threeHunkDiff() *diffselect.Diff {
	hunk := func(marker string) diffselect.Hunk {
		return diffselect.Hunk{
			OldStart: 1, OldCount: 2, NewStart: 1, NewCount: 2,
			Lines: []diffselect.Line{
				{Type: diffselect.LineContext, Content: marker},
				{Type: diffselect.LineAdded, Content: marker + " added"},
			},
		}
	}
	return &diffselect.Diff{
		Files: []diffselect.FileDiff{
			{
				OldPath:   "file.go",
				NewPath:   "file.go",
				Operation: diffselect.FileModified,
				Hunks:     []diffselect.Hunk{hunk("HUNK_ONE"), hunk("HUNK_TWO"), hunk("HUNK_THREE")},
			},
		},
	}
}

// windowSize primes a model with a terminal size so the viewport is ready.
func windowSize(t *testing.T, m bubbletea.Model) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got, ok := updated.(bubbletea.Model)
	require.True(t, ok)
	return got
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sendKey(t *testing.T, m bubbletea.Model, msg tea.KeyMsg) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	got, ok := updated.(bubbletea.Model)
	require.True(t, ok)
	return got
}

func TestModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(threeHunkDiff()))
	assert.Nil(t, m.Init(), "Init should return nil command")
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(&diffselect.Diff{}))
	assert.Contains(t, m.View(), "Loading", "View should show loading state before WindowSizeMsg")
}

func TestModel_MovementKeys(t *testing.T) {
	t.Parallel()

	t.Run("j moves the selection down a hunk", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, keyRune('j'))

		assert.Equal(t, diffselect.HunkPos(0, 1), m.Selection().Head())
	})

	t.Run("k at the first hunk stays put", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, keyRune('k'))

		assert.Equal(t, diffselect.HunkPos(0, 0), m.Selection().Head())
	})

	t.Run("J expands the selection by a hunk", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, keyRune('J'))

		low, high := m.Selection().Range()
		assert.Equal(t, diffselect.HunkPos(0, 0), low)
		assert.Equal(t, diffselect.HunkPos(0, 1), high)
	})

	t.Run("tab switches to line mode at the first changed line", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})

		assert.Equal(t, diffselect.ModeLine, m.Selection().Mode())
		assert.Equal(t, diffselect.LinePos(0, 0, 1), m.Selection().Head())
	})

	t.Run("j in line mode steps to the next changed line", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
		m = sendKey(t, m, keyRune('j'))

		assert.Equal(t, diffselect.LinePos(0, 1, 1), m.Selection().Head())
	})
}

func TestModel_Yank(t *testing.T) {
	t.Parallel()

	t.Run("copies the selected text to the clipboard", func(t *testing.T) {
		t.Parallel()

		var copied string
		clip := &mock.Clipboard{
			CopyFn: func(text string) error {
				copied = text
				return nil
			},
		}

		m := bubbletea.NewModel(staticProvider(threeHunkDiff()), bubbletea.WithClipboard(clip))
		m = windowSize(t, m)
		m = sendKey(t, m, keyRune('y'))

		assert.Equal(t, " HUNK_ONE\n+HUNK_ONE added\n", copied)
	})

	t.Run("reports when no clipboard is configured", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, keyRune('y'))

		assert.Contains(t, m.View(), "no clipboard configured")
	})
}

func TestModel_Stage(t *testing.T) {
	t.Parallel()

	t.Run("applies the selection patch to the index", func(t *testing.T) {
		t.Parallel()

		var gotRepo, gotPatch string
		var gotCached bool
		git := &mock.GitRunner{
			ApplyFn: func(_ context.Context, repoPath, patch string, cached bool) error {
				gotRepo, gotPatch, gotCached = repoPath, patch, cached
				return nil
			},
		}

		m := bubbletea.NewModel(staticProvider(threeHunkDiff()), bubbletea.WithGit(git, "/repo"))
		m = windowSize(t, m)
		m = sendKey(t, m, keyRune('s'))

		assert.Equal(t, "/repo", gotRepo)
		assert.True(t, gotCached)
		assert.Contains(t, gotPatch, "+HUNK_ONE added")
		assert.NotContains(t, gotPatch, "HUNK_TWO")
	})

	t.Run("reports when no repository is configured", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, keyRune('s'))

		assert.Contains(t, m.View(), "no repository configured")
	})
}

func TestModel_StatusBar(t *testing.T) {
	t.Parallel()

	t.Run("shows mode and position", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		view := m.View()

		assert.Contains(t, view, "HUNK")
		assert.Contains(t, view, "file 1/1")
		assert.Contains(t, view, "hunk 1/3")
	})

	t.Run("updates on navigation", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, keyRune('j'))

		assert.Contains(t, m.View(), "hunk 2/3")
	})

	t.Run("shows line mode after toggle", func(t *testing.T) {
		t.Parallel()

		m := windowSize(t, bubbletea.NewModel(staticProvider(threeHunkDiff())))
		m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})

		assert.Contains(t, m.View(), "LINE")
	})
}

func TestModel_RendersDiff(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(threeHunkDiff()))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("HUNK_ONE")) &&
			bytes.Contains(out, []byte("+HUNK_ONE added")) &&
			bytes.Contains(out, []byte("@@ -1,2 +1,2 @@"))
	})

	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_QuitOnQ(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(&diffselect.Diff{}))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_QuitOnCtrlC(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(&diffselect.Diff{}))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_NavigationWithEmptyDiff(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(&diffselect.Diff{}))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	// Navigation keys should not panic with an empty diff.
	tm.Send(keyRune('j'))
	tm.Send(keyRune('k'))
	tm.Send(keyRune('J'))
	tm.Send(keyRune('K'))
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})

	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_AppliesColors(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(threeHunkDiff()),
		bubbletea.WithRenderer(trueColorRenderer()))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	// True color foreground codes use the 38;2;R;G;B format.
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("38;2;")) &&
			bytes.Contains(out, []byte("HUNK_ONE added"))
	})

	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_SelectionMovesOnJ(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(staticProvider(threeHunkDiff()))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("hunk 1/3"))
	})

	tm.Send(keyRune('j'))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("hunk 2/3"))
	})

	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
