package diffselect

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements in a diff view.
// The Selected pairs are applied to lines inside the selection range and
// the Cursor pair to the head position's row.
type Styles struct {
	Added           ColorPair // Style for added lines (+)
	Deleted         ColorPair // Style for deleted lines (-)
	Context         ColorPair // Style for context lines (unchanged)
	HunkHeader      ColorPair // Style for hunk headers (@@ ... @@)
	FileHeader      ColorPair // Style for file headers
	LineNumber      ColorPair // Style for line numbers in the gutter
	AddedGutter     ColorPair // Gutter style for added lines
	DeletedGutter   ColorPair // Gutter style for deleted lines
	SelectedAdded   ColorPair // Added lines inside the selection range
	SelectedDeleted ColorPair // Deleted lines inside the selection range
	SelectedContext ColorPair // Context lines inside the selection range
	Cursor          ColorPair // The head position's row
}

// Palette contains the semantic colors a theme is built from; the status
// bar and syntax highlighting draw from it directly.
type Palette struct {
	Background string
	Foreground string

	Added   string
	Deleted string
	Context string

	Keyword     string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Type        string
	Constant    string
	Punctuation string

	UIBackground string
	UIForeground string
	UIAccent     string
}

// Theme provides styles for rendering diffs.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
