package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffselect"
)

// renderConfig holds all rendering parameters for renderDiff.
type renderConfig struct {
	diff             *diffselect.Diff
	styles           diffselect.Styles
	renderer         *lipgloss.Renderer
	width            int
	languageDetector diffselect.LanguageDetector
	tokenizer        diffselect.Tokenizer

	// Selection state
	low  diffselect.Position
	high diffselect.Position
	head diffselect.Position
	mode diffselect.Mode
}

// minGutterWidth is the minimum width of each line number column in the gutter.
const minGutterWidth = 4

// renderDiff converts a Diff to a styled string with the current selection
// highlighted. If renderer is nil, the default lipgloss renderer is used.
// Width is the terminal width for full-width backgrounds.
func renderDiff(cfg renderConfig) string {
	diff := cfg.diff
	styles := cfg.styles
	renderer := cfg.renderer
	width := cfg.width
	if diff == nil {
		return ""
	}

	gutterWidth := calculateGutterWidth(diff)

	fileHeaderStyle := styleFromColorPair(styles.FileHeader, renderer)
	hunkHeaderStyle := styleFromColorPair(styles.HunkHeader, renderer)
	addedStyle := styleFromColorPair(styles.Added, renderer)
	deletedStyle := styleFromColorPair(styles.Deleted, renderer)
	contextStyle := styleFromColorPair(styles.Context, renderer)
	lineNumStyle := styleFromColorPair(styles.LineNumber, renderer)
	addedGutterStyle := styleFromColorPair(styles.AddedGutter, renderer)
	deletedGutterStyle := styleFromColorPair(styles.DeletedGutter, renderer)
	selAddedStyle := styleFromColorPair(styles.SelectedAdded, renderer)
	selDeletedStyle := styleFromColorPair(styles.SelectedDeleted, renderer)
	selContextStyle := styleFromColorPair(styles.SelectedContext, renderer)
	cursorStyle := styleFromColorPair(styles.Cursor, renderer)

	var sb strings.Builder
	for fileIdx, file := range diff.Files {
		if !shouldRenderFile(file) {
			continue
		}

		path := filePath(file)
		var language string
		if cfg.languageDetector != nil {
			language = cfg.languageDetector.DetectFromPath(path)
		}

		// File header: ── filename ─────────────────── +N -M ──
		added, deleted := file.Stats()
		stats := fmt.Sprintf("+%d -%d", added, deleted)
		middle := "── " + path + " "
		end := " " + stats + " ──"
		fillWidth := width - lipgloss.Width(middle) - lipgloss.Width(end)
		if fillWidth < 3 {
			fillWidth = 3
		}
		sb.WriteString(fileHeaderStyle.Render(middle + strings.Repeat("─", fillWidth) + end))
		sb.WriteString("\n")

		if len(file.Hunks) == 0 {
			sb.WriteString(contextStyle.Render("(empty)"))
			sb.WriteString("\n")
			continue
		}

		for hunkIdx, hunk := range file.Hunks {
			hp := diffselect.HunkPos(fileIdx, hunkIdx)
			hunkInRange := diffselect.ComparePositions(cfg.low, hp) <= 0 &&
				diffselect.ComparePositions(hp, cfg.high) <= 0
			headerStyle := hunkHeaderStyle
			if hunkInRange {
				headerStyle = selContextStyle
			}
			if cfg.mode == diffselect.ModeHunk && cfg.head.File == fileIdx && cfg.head.Hunk == hunkIdx {
				headerStyle = cursorStyle
			}
			sb.WriteString(headerStyle.Render(padLine(formatHunkHeader(hunk), width)))
			sb.WriteString("\n")

			for lineIdx, line := range hunk.Lines {
				selected := diffselect.RangeContainsLine(cfg.low, cfg.high, fileIdx, hunkIdx, lineIdx)
				atHead := cfg.mode == diffselect.ModeLine && cfg.head.HasLine() &&
					cfg.head.File == fileIdx && cfg.head.Hunk == hunkIdx && cfg.head.Line == lineIdx

				var gutterStyle, lineStyle lipgloss.Style
				switch line.Type {
				case diffselect.LineAdded:
					gutterStyle, lineStyle = addedGutterStyle, addedStyle
					if selected {
						lineStyle = selAddedStyle
					}
				case diffselect.LineDeleted:
					gutterStyle, lineStyle = deletedGutterStyle, deletedStyle
					if selected {
						lineStyle = selDeletedStyle
					}
				default:
					gutterStyle, lineStyle = lineNumStyle, contextStyle
					if selected {
						lineStyle = selContextStyle
					}
				}
				if atHead {
					lineStyle = cursorStyle
				}

				sb.WriteString(formatGutter(line.OldLineNum, line.NewLineNum, gutterWidth, gutterStyle))
				sb.WriteString(lineStyle.Render(" "))

				prefix := linePrefixFor(line.Type)
				lineContent := ExpandTabs(strings.TrimSuffix(line.Content, "\n"), 1)
				fullLine := prefix + lineContent

				// Syntax highlighting only on unselected lines so selection
				// backgrounds stay uniform.
				var tokens []diffselect.Token
				if !selected && !atHead && cfg.tokenizer != nil && language != "" {
					tokens = cfg.tokenizer.Tokenize(language, lineContent)
				}

				var styledLine string
				if tokens != nil {
					var colors diffselect.ColorPair
					switch line.Type {
					case diffselect.LineAdded:
						colors = styles.Added
					case diffselect.LineDeleted:
						colors = styles.Deleted
					default:
						colors = styles.Context
					}
					styledLine = renderLineWithTokens(prefix, tokens, colors, renderer, width)
				} else {
					styledLine = lineStyle.Render(padLine(fullLine, width))
				}
				sb.WriteString(styledLine)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// renderLineWithTokens renders a line with syntax highlighting.
// Each token gets its syntax foreground color combined with the diff background.
func renderLineWithTokens(prefix string, tokens []diffselect.Token, colors diffselect.ColorPair, renderer *lipgloss.Renderer, width int) string {
	var sb strings.Builder

	newStyle := func() lipgloss.Style {
		if renderer != nil {
			return renderer.NewStyle()
		}
		return lipgloss.NewStyle()
	}

	baseStyle := newStyle()
	if colors.Foreground != "" {
		baseStyle = baseStyle.Foreground(lipgloss.Color(colors.Foreground))
	}
	if colors.Background != "" {
		baseStyle = baseStyle.Background(lipgloss.Color(colors.Background))
	}

	sb.WriteString(baseStyle.Render(prefix))

	for _, tok := range tokens {
		style := newStyle()
		if colors.Background != "" {
			style = style.Background(lipgloss.Color(colors.Background))
		}
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		} else if colors.Foreground != "" {
			style = style.Foreground(lipgloss.Color(colors.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(tok.Text))
	}

	currentLen := lipgloss.Width(prefix)
	for _, tok := range tokens {
		currentLen += lipgloss.Width(tok.Text)
	}
	if currentLen < width {
		sb.WriteString(baseStyle.Render(strings.Repeat(" ", width-currentLen)))
	}

	return sb.String()
}

// calculateGutterWidth determines the appropriate gutter width for a diff
// based on the maximum line number present in any hunk.
func calculateGutterWidth(diff *diffselect.Diff) int {
	maxLineNum := 0
	for _, file := range diff.Files {
		for _, hunk := range file.Hunks {
			for _, line := range hunk.Lines {
				if line.OldLineNum > maxLineNum {
					maxLineNum = line.OldLineNum
				}
				if line.NewLineNum > maxLineNum {
					maxLineNum = line.NewLineNum
				}
			}
		}
	}
	width := digitWidth(maxLineNum)
	if width < minGutterWidth {
		return minGutterWidth
	}
	return width
}

// formatGutter formats the gutter column with old and new line numbers.
// No divider character - the color transition provides visual separation.
func formatGutter(oldLineNum, newLineNum, width int, style lipgloss.Style) string {
	oldStr := formatLineNum(oldLineNum, width)
	newStr := formatLineNum(newLineNum, width)
	return style.Render(fmt.Sprintf("%s %s ", oldStr, newStr))
}

// formatLineNum formats a line number for the gutter.
// Returns right-aligned number or empty space for zero (missing) line numbers.
func formatLineNum(num, width int) string {
	if num == 0 {
		return fmt.Sprintf("%*s", width, "")
	}
	return fmt.Sprintf("%*d", width, num)
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp diffselect.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// formatHunkHeader formats a hunk header in standard diff format.
func formatHunkHeader(hunk diffselect.Hunk) string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
	if hunk.Section != "" {
		header += " " + hunk.Section
	}
	return header
}

// linePrefixFor returns the appropriate prefix for a line type.
func linePrefixFor(lineType diffselect.LineType) string {
	switch lineType {
	case diffselect.LineAdded:
		return "+"
	case diffselect.LineDeleted:
		return "-"
	default:
		return " "
	}
}

// padLine pads a line with spaces to the specified display width.
// If the line is already wider, it is returned unchanged.
func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// shouldRenderFile returns true if the file should be rendered in the diff view.
// Binary files are skipped, but empty text files (new or deleted) are shown.
func shouldRenderFile(file diffselect.FileDiff) bool {
	if file.IsBinary {
		return false
	}
	if len(file.Hunks) > 0 {
		return true
	}
	switch file.Operation {
	case diffselect.FileAdded, diffselect.FileDeleted, diffselect.FileRenamed, diffselect.FileCopied:
		return true
	}
	return false
}

// filePath returns the display path for a file in the diff.
// Uses NewPath for most operations, OldPath for deleted files.
func filePath(file diffselect.FileDiff) string {
	var path string
	if file.Operation == diffselect.FileDeleted {
		path = file.OldPath
	} else {
		path = file.NewPath
	}
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	return path
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}

// positionRow returns the content row at which the given position is
// rendered, so the viewport can follow the selection head. In hunk mode
// the row of the hunk header is returned; in line mode the row of the
// line itself. Returns -1 when the position is not rendered.
func positionRow(diff *diffselect.Diff, p diffselect.Position, mode diffselect.Mode) int {
	if diff == nil {
		return -1
	}

	row := 0
	for fileIdx, file := range diff.Files {
		if !shouldRenderFile(file) {
			continue
		}
		row++ // file header
		if len(file.Hunks) == 0 {
			row++ // "(empty)" indicator
			continue
		}
		for hunkIdx, hunk := range file.Hunks {
			if fileIdx == p.File && hunkIdx == p.Hunk {
				if mode == diffselect.ModeLine && p.HasLine() && p.Line < len(hunk.Lines) {
					return row + 1 + p.Line
				}
				return row
			}
			row += 1 + len(hunk.Lines)
		}
	}
	return -1
}
