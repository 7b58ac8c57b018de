// Package gitdiff implements diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.Parser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads diff content and returns the parsed tree of files, hunks,
// and lines that the selection model navigates.
func (p *Parser) Parse(r io.Reader) (*diffselect.Diff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &diffselect.Diff{
		Files: make([]diffselect.FileDiff, 0, len(files)),
	}
	for _, f := range files {
		result.Files = append(result.Files, toFileDiff(f))
	}
	return result, nil
}

func toFileDiff(f *gitdiff.File) diffselect.FileDiff {
	fd := diffselect.FileDiff{
		OldPath:  f.OldName,
		NewPath:  f.NewName,
		IsBinary: f.IsBinary,
		OldMode:  f.OldMode,
		NewMode:  f.NewMode,
	}

	switch {
	case f.IsNew:
		fd.Operation = diffselect.FileAdded
	case f.IsDelete:
		fd.Operation = diffselect.FileDeleted
	case f.IsRename:
		fd.Operation = diffselect.FileRenamed
	case f.IsCopy:
		fd.Operation = diffselect.FileCopied
	default:
		fd.Operation = diffselect.FileModified
	}

	fd.Hunks = make([]diffselect.Hunk, 0, len(f.TextFragments))
	for _, frag := range f.TextFragments {
		fd.Hunks = append(fd.Hunks, toHunk(frag))
	}
	return fd
}

func toHunk(frag *gitdiff.TextFragment) diffselect.Hunk {
	hunk := diffselect.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Section:  frag.Comment,
	}

	oldLineNum := int(frag.OldPosition)
	newLineNum := int(frag.NewPosition)
	for _, l := range frag.Lines {
		line := diffselect.Line{
			Content:   l.Line,
			NoNewline: l.NoEOL(),
		}
		switch l.Op {
		case gitdiff.OpContext:
			line.Type = diffselect.LineContext
			line.OldLineNum = oldLineNum
			line.NewLineNum = newLineNum
			oldLineNum++
			newLineNum++
		case gitdiff.OpAdd:
			line.Type = diffselect.LineAdded
			line.NewLineNum = newLineNum
			newLineNum++
		case gitdiff.OpDelete:
			line.Type = diffselect.LineDeleted
			line.OldLineNum = oldLineNum
			oldLineNum++
		}
		hunk.Lines = append(hunk.Lines, line)
	}
	return hunk
}
