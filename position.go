package diffselect

import "fmt"

// NoLine marks a Position without a line component.
const NoLine = -1

// Position addresses a location in the diff tree. A position with
// Line == NoLine addresses a whole hunk; one with a line index addresses
// a single line within that hunk. Outside Line mode a present line index
// is advisory only: hunk-granularity operations ignore it.
type Position struct {
	File int
	Hunk int
	Line int
}

// HunkPos returns a hunk-granularity position.
func HunkPos(file, hunk int) Position {
	return Position{File: file, Hunk: hunk, Line: NoLine}
}

// LinePos returns a line-granularity position.
func LinePos(file, hunk, line int) Position {
	return Position{File: file, Hunk: hunk, Line: line}
}

// HasLine reports whether the position carries a line component.
func (p Position) HasLine() bool {
	return p.Line != NoLine
}

// String returns "file.hunk" or "file.hunk.line" for debugging output.
func (p Position) String() string {
	if !p.HasLine() {
		return fmt.Sprintf("%d.%d", p.File, p.Hunk)
	}
	return fmt.Sprintf("%d.%d.%d", p.File, p.Hunk, p.Line)
}

// ComparePositions is the total order used everywhere positions are
// ordered: ascending by file, then hunk, then line. The line component
// participates only when both positions carry one; a hunk-granularity
// position and a line-granularity position at the same file/hunk compare
// equal even though they are not the same value. Range normalization,
// multi-selection sorting, and range coverage all depend on that rule.
func ComparePositions(a, b Position) int {
	switch {
	case a.File < b.File:
		return -1
	case a.File > b.File:
		return 1
	}
	switch {
	case a.Hunk < b.Hunk:
		return -1
	case a.Hunk > b.Hunk:
		return 1
	}
	if a.HasLine() && b.HasLine() {
		switch {
		case a.Line < b.Line:
			return -1
		case a.Line > b.Line:
			return 1
		}
	}
	return 0
}
