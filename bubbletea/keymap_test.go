package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffselect/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	t.Run("Up binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
		assert.True(t, key.Matches(msg, km.Up), "k should match Up binding")

		msg = tea.KeyMsg{Type: tea.KeyUp}
		assert.True(t, key.Matches(msg, km.Up), "arrow up should match Up binding")
	})

	t.Run("Down binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
		assert.True(t, key.Matches(msg, km.Down), "j should match Down binding")

		msg = tea.KeyMsg{Type: tea.KeyDown}
		assert.True(t, key.Matches(msg, km.Down), "arrow down should match Down binding")
	})

	t.Run("ExpandUp binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'K'}}
		assert.True(t, key.Matches(msg, km.ExpandUp), "K should match ExpandUp binding")
	})

	t.Run("ExpandDown binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'J'}}
		assert.True(t, key.Matches(msg, km.ExpandDown), "J should match ExpandDown binding")
	})

	t.Run("ToggleMode binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyTab}
		assert.True(t, key.Matches(msg, km.ToggleMode), "tab should match ToggleMode binding")
	})

	t.Run("Yank binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}
		assert.True(t, key.Matches(msg, km.Yank), "y should match Yank binding")
	})

	t.Run("Stage binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}
		assert.True(t, key.Matches(msg, km.Stage), "s should match Stage binding")
	})

	t.Run("HalfPageUp binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyCtrlU}
		assert.True(t, key.Matches(msg, km.HalfPageUp), "ctrl+u should match HalfPageUp binding")
	})

	t.Run("HalfPageDown binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyCtrlD}
		assert.True(t, key.Matches(msg, km.HalfPageDown), "ctrl+d should match HalfPageDown binding")
	})

	t.Run("Quit binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		assert.True(t, key.Matches(msg, km.Quit), "q should match Quit binding")

		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		assert.True(t, key.Matches(msg, km.Quit), "ctrl+c should match Quit binding")
	})
}

func TestKeyMap_HelpText(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	t.Run("bindings have help text", func(t *testing.T) {
		t.Parallel()

		assert.NotEmpty(t, km.Up.Help().Key, "Up should have help key")
		assert.NotEmpty(t, km.Up.Help().Desc, "Up should have help description")

		assert.NotEmpty(t, km.ExpandDown.Help().Key, "ExpandDown should have help key")
		assert.NotEmpty(t, km.ExpandDown.Help().Desc, "ExpandDown should have help description")

		assert.NotEmpty(t, km.ToggleMode.Help().Key, "ToggleMode should have help key")
		assert.NotEmpty(t, km.ToggleMode.Help().Desc, "ToggleMode should have help description")

		assert.NotEmpty(t, km.Quit.Help().Key, "Quit should have help key")
		assert.NotEmpty(t, km.Quit.Help().Desc, "Quit should have help description")
	})
}
