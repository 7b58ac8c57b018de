// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/diffselect"

// Compile-time interface verification.
var _ diffselect.Theme = (*Theme)(nil)

// Theme implements diffselect.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  diffselect.Styles
	palette diffselect.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() diffselect.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() diffselect.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Selection backgrounds are brighter than the diff backgrounds so the
// selected range reads clearly against added/deleted coloring.
func DarkTheme() *Theme {
	return &Theme{
		styles: diffselect.Styles{
			Added: diffselect.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green
			},
			Deleted: diffselect.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red
			},
			Context: diffselect.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			HunkHeader: diffselect.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			FileHeader: diffselect.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			LineNumber: diffselect.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			AddedGutter: diffselect.ColorPair{
				Foreground: "#a6e3a1",
				Background: "#004000",
			},
			DeletedGutter: diffselect.ColorPair{
				Foreground: "#f38ba8",
				Background: "#3f0001",
			},
			SelectedAdded: diffselect.ColorPair{
				Foreground: "#a6e3a1",
				Background: "#1b5e20", // Mid green, brighter than Added
			},
			SelectedDeleted: diffselect.ColorPair{
				Foreground: "#f38ba8",
				Background: "#7f1d2d", // Mid red, brighter than Deleted
			},
			SelectedContext: diffselect.ColorPair{
				Foreground: "#cdd6f4",
				Background: "#45475a", // Raised surface
			},
			Cursor: diffselect.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#89b4fa", // Accent blue
			},
		},
		palette: diffselect.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Added:   "#a6e3a1",
			Deleted: "#f38ba8",
			Context: "#6c7086",

			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",

			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#89b4fa",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: diffselect.Styles{
			Added: diffselect.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Deleted: diffselect.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Context: diffselect.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			HunkHeader: diffselect.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			FileHeader: diffselect.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			LineNumber: diffselect.ColorPair{
				Foreground: "#9ca0b0",
			},
			AddedGutter: diffselect.ColorPair{
				Foreground: "#40a02b",
				Background: "#d4f4d4",
			},
			DeletedGutter: diffselect.ColorPair{
				Foreground: "#d20f39",
				Background: "#f4d4d4",
			},
			SelectedAdded: diffselect.ColorPair{
				Foreground: "#1e3a1e",
				Background: "#a8e0a8", // Deeper green than Added
			},
			SelectedDeleted: diffselect.ColorPair{
				Foreground: "#4c0519",
				Background: "#f0b0bc", // Deeper red than Deleted
			},
			SelectedContext: diffselect.ColorPair{
				Foreground: "#4c4f69",
				Background: "#ccd0da", // Raised surface
			},
			Cursor: diffselect.ColorPair{
				Foreground: "#eff1f5",
				Background: "#1e66f5", // Accent blue
			},
		},
		palette: diffselect.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Added:   "#40a02b",
			Deleted: "#d20f39",
			Context: "#9ca0b0",

			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",

			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
			UIAccent:     "#1e66f5",
		},
	}
}
