// Package diffselect implements the selection and cursor model for a
// structured diff view: an ordered tree of files, hunks, and lines.
package diffselect

import (
	"context"
	"io"
	"io/fs"
)

// Diff represents a complete diff containing one or more file changes.
type Diff struct {
	Files []FileDiff
}

// FileDiff represents changes to a single file.
type FileDiff struct {
	OldPath   string      // "file.go" or empty for new files
	NewPath   string      // "file.go" or empty for deleted files
	Operation FileOp      // Added, Deleted, Modified, Renamed, Copied
	IsBinary  bool        // Binary files have no hunks
	OldMode   fs.FileMode // 0 if unchanged
	NewMode   fs.FileMode // For permission changes
	Hunks     []Hunk
}

// Stats returns the number of added and deleted lines in the file.
func (f FileDiff) Stats() (added, deleted int) {
	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Type {
			case LineAdded:
				added++
			case LineDeleted:
				deleted++
			}
		}
	}
	return added, deleted
}

// FileOp represents the type of operation performed on a file.
type FileOp int

// File operation types.
const (
	FileModified FileOp = iota
	FileAdded
	FileDeleted
	FileRenamed
	FileCopied
)

// Hunk represents a contiguous block of changes within a file.
type Hunk struct {
	OldStart int    // From @@ -X,...
	OldCount int    // From @@ -X,Y ...
	NewStart int    // From @@ ...,+X
	NewCount int    // From @@ ...,+X,Y
	Section  string // Optional function name after @@ ... @@
	Lines    []Line
}

// Line represents a single line within a hunk.
type Line struct {
	Type       LineType
	Content    string
	OldLineNum int  // 0 if line is Added
	NewLineNum int  // 0 if line is Deleted
	NoNewline  bool // "\ No newline at end of file" marker
}

// LineType represents the type of a diff line.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineDeleted
)

// Changed reports whether the line type represents a change.
// Line-mode navigation steps over changed lines only; context lines
// are never landed on.
func (t LineType) Changed() bool {
	return t == LineAdded || t == LineDeleted
}

// Provider supplies the diff tree the selection model addresses into.
// The model re-reads the tree on every navigation call and never caches
// it, so a provider may return a different tree between calls.
type Provider interface {
	Diff() *Diff
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() *Diff

// Diff returns f().
func (f ProviderFunc) Diff() *Diff {
	return f()
}

// Parser parses unified diff content into a Diff.
type Parser interface {
	Parse(r io.Reader) (*Diff, error)
}

// Viewer displays a diff with an interactive selection.
type Viewer interface {
	// View displays the provider's diff and blocks until the user exits.
	View(ctx context.Context, p Provider) error
}

// GitRunner provides access to git operations for loading diffs and
// applying selection patches.
type GitRunner interface {
	// Diff returns the unified diff for the repository at repoPath.
	// When staged is true it returns the index diff instead of the
	// working tree diff.
	Diff(ctx context.Context, repoPath string, staged bool) (string, error)
	// Apply applies patch to the repository at repoPath. When cached is
	// true the patch is applied to the index (staging).
	Apply(ctx context.Context, repoPath string, patch string, cached bool) error
}

// Clipboard writes content to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
