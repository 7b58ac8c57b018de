package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffselect"
)

// Model is the Bubble Tea model for navigating a diff and selecting
// hunks or lines from it.
type Model struct {
	provider  diffselect.Provider
	selection *diffselect.Selection
	changed   *bool

	// Rendering collaborators
	languageDetector diffselect.LanguageDetector
	tokenizer        diffselect.Tokenizer

	// Actions on the selected range
	clipboard diffselect.Clipboard
	git       diffselect.GitRunner
	repoPath  string

	// UI state
	viewport viewport.Model
	keymap   KeyMap
	styles   diffselect.Styles
	palette  diffselect.Palette
	renderer *lipgloss.Renderer
	width    int
	ready    bool
	status   string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer         *lipgloss.Renderer
	theme            diffselect.Theme
	languageDetector diffselect.LanguageDetector
	tokenizer        diffselect.Tokenizer
	clipboard        diffselect.Clipboard
	git              diffselect.GitRunner
	repoPath         string
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t diffselect.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithLanguageDetector sets the language detector for syntax highlighting.
func WithLanguageDetector(d diffselect.LanguageDetector) ModelOption {
	return func(cfg *modelConfig) {
		cfg.languageDetector = d
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t diffselect.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithClipboard sets the clipboard used to yank the selected text.
func WithClipboard(c diffselect.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithGit sets the git runner and repository path used to stage the
// selected changes.
func WithGit(g diffselect.GitRunner, repoPath string) ModelOption {
	return func(cfg *modelConfig) {
		cfg.git = g
		cfg.repoPath = repoPath
	}
}

// NewModel creates a new Model reading its diff from the given provider.
func NewModel(provider diffselect.Provider, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var styles diffselect.Styles
	var palette diffselect.Palette
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
		palette = cfg.theme.Palette()
	} else {
		styles = defaultStyles()
		palette = defaultPalette()
	}

	// The changed flag is shared across Model copies so selection change
	// notifications survive Bubble Tea's value semantics.
	changed := new(bool)
	selection := diffselect.New(provider)
	selection.OnDidChange(func() {
		*changed = true
	})

	return Model{
		provider:         provider,
		selection:        selection,
		changed:          changed,
		languageDetector: cfg.languageDetector,
		tokenizer:        cfg.tokenizer,
		clipboard:        cfg.clipboard,
		git:              cfg.git,
		repoPath:         cfg.repoPath,
		keymap:           DefaultKeyMap(),
		styles:           styles,
		palette:          palette,
		renderer:         cfg.renderer,
	}
}

// Selection exposes the underlying selection, mainly for tests.
func (m Model) Selection() *diffselect.Selection {
	return m.selection
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Up):
			m.selection.MoveUp()
		case key.Matches(msg, m.keymap.Down):
			m.selection.MoveDown()
		case key.Matches(msg, m.keymap.ExpandUp):
			m.selection.ExpandUp()
		case key.Matches(msg, m.keymap.ExpandDown):
			m.selection.ExpandDown()
		case key.Matches(msg, m.keymap.ToggleMode):
			m.selection.ToggleMode()
		case key.Matches(msg, m.keymap.Yank):
			m.status = m.yankSelection()
		case key.Matches(msg, m.keymap.Stage):
			m.status = m.stageSelection()
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		}
		if m.ready && *m.changed {
			*m.changed = false
			m.viewport.SetContent(m.renderContent())
			m.scrollToHead()
		}
		return m, nil
	case tea.WindowSizeMsg:
		statusBarHeight := 1
		widthChanged := m.width != msg.Width
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else if widthChanged {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
			m.viewport.SetContent(m.renderContent())
		} else {
			m.viewport.Height = msg.Height - statusBarHeight
		}
		*m.changed = false
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// renderContent renders the diff with the current selection highlighted.
func (m Model) renderContent() string {
	low, high := m.selection.Range()
	return renderDiff(renderConfig{
		diff:             m.provider.Diff(),
		styles:           m.styles,
		renderer:         m.renderer,
		width:            m.width,
		languageDetector: m.languageDetector,
		tokenizer:        m.tokenizer,
		low:              low,
		high:             high,
		head:             m.selection.Head(),
		mode:             m.selection.Mode(),
	})
}

// scrollToHead keeps the selection head visible in the viewport.
func (m *Model) scrollToHead() {
	row := positionRow(m.provider.Diff(), m.selection.Head(), m.selection.Mode())
	if row < 0 {
		return
	}
	switch {
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

// yankSelection copies the selected text to the clipboard and returns a
// status message.
func (m Model) yankSelection() string {
	if m.clipboard == nil {
		return "no clipboard configured"
	}
	low, high := m.selection.Range()
	text := diffselect.SelectedText(m.provider.Diff(), low, high)
	if text == "" {
		return "nothing selected"
	}
	if err := m.clipboard.Copy(text); err != nil {
		return fmt.Sprintf("yank failed: %v", err)
	}
	lines := strings.Count(text, "\n")
	return fmt.Sprintf("yanked %d line(s)", lines)
}

// stageSelection applies the selected changes to the git index and
// returns a status message.
func (m Model) stageSelection() string {
	if m.git == nil || m.repoPath == "" {
		return "no repository configured"
	}
	patch := diffselect.BuildPatch(m.provider.Diff(), []diffselect.Ranger{m.selection})
	if patch == "" {
		return "no changes selected"
	}
	if err := m.git.Apply(context.Background(), m.repoPath, patch, true); err != nil {
		return fmt.Sprintf("stage failed: %v", err)
	}
	return "staged selection"
}

func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders the status bar with mode and position info.
func (m Model) statusBarView() string {
	barStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.Foreground))

	dimStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.Context))

	sepStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.UIForeground))

	modeStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIAccent)).
		Foreground(lipgloss.Color(m.palette.UIBackground)).
		Bold(true)

	head := m.selection.Head()
	diff := m.provider.Diff()
	fileTotal, hunkTotal := 0, 0
	if diff != nil {
		fileTotal = len(diff.Files)
		if head.File < fileTotal {
			hunkTotal = len(diff.Files[head.File].Hunks)
		}
	}

	fileWidth := digitWidth(fileTotal)
	hunkWidth := digitWidth(hunkTotal)
	filePos := fmt.Sprintf("file %*d/%-*d", fileWidth, head.File+1, fileWidth, fileTotal)
	hunkPos := fmt.Sprintf("hunk %*d/%-*d", hunkWidth, head.Hunk+1, hunkWidth, hunkTotal)

	sep := sepStyle.Render(" │ ")
	content := modeStyle.Render(" "+strings.ToUpper(m.selection.Mode().String())+" ") + sep +
		barStyle.Render(filePos) + sep +
		barStyle.Render(hunkPos) + sep

	if m.status != "" {
		content += barStyle.Render(m.status) + sep
	}

	content += dimStyle.Render("j/k:move  J/K:expand  tab:mode  y:yank  s:stage  q:quit") +
		barStyle.Render("  ")

	// Right-align by padding left side with background
	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		content = barStyle.Render(strings.Repeat(" ", m.width-contentWidth)) + content
	}

	return content
}

// defaultStyles returns the styles used when no theme is configured.
func defaultStyles() diffselect.Styles {
	return diffselect.Styles{
		Added:           diffselect.ColorPair{Foreground: "#a6e3a1", Background: "#2a3b2e"},
		Deleted:         diffselect.ColorPair{Foreground: "#f38ba8", Background: "#3b2a30"},
		Context:         diffselect.ColorPair{Foreground: "#6c7086"},
		HunkHeader:      diffselect.ColorPair{Foreground: "#89b4fa"},
		FileHeader:      diffselect.ColorPair{Foreground: "#cdd6f4", Background: "#313244"},
		LineNumber:      diffselect.ColorPair{Foreground: "#6c7086"},
		AddedGutter:     diffselect.ColorPair{Foreground: "#a6e3a1", Background: "#2a3b2e"},
		DeletedGutter:   diffselect.ColorPair{Foreground: "#f38ba8", Background: "#3b2a30"},
		SelectedAdded:   diffselect.ColorPair{Foreground: "#a6e3a1", Background: "#1b5e20"},
		SelectedDeleted: diffselect.ColorPair{Foreground: "#f38ba8", Background: "#7f1d2d"},
		SelectedContext: diffselect.ColorPair{Foreground: "#cdd6f4", Background: "#45475a"},
		Cursor:          diffselect.ColorPair{Foreground: "#11111b", Background: "#89b4fa"},
	}
}

// defaultPalette returns the palette used when no theme is configured.
func defaultPalette() diffselect.Palette {
	return diffselect.Palette{
		Background:   "#1e1e2e",
		Foreground:   "#cdd6f4",
		Added:        "#a6e3a1",
		Deleted:      "#f38ba8",
		Context:      "#6c7086",
		UIBackground: "#313244",
		UIForeground: "#6c7086",
		UIAccent:     "#89b4fa",
	}
}
