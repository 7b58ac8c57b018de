package diffselect

import (
	"fmt"
	"strings"
)

// RangeContainsLine reports whether the line at (file, hunk, line) falls
// within [low, high] under the position order. A hunk-granularity
// endpoint compares equal to every line position in its hunk, so a range
// bounded by hunk positions covers those hunks whole.
func RangeContainsLine(low, high Position, file, hunk, line int) bool {
	p := LinePos(file, hunk, line)
	return ComparePositions(low, p) <= 0 && ComparePositions(p, high) <= 0
}

// BuildPatch returns unified diff text containing only the changed lines
// covered by the given selections. Uncovered deletions degrade to
// context lines, uncovered additions are dropped, and hunk headers are
// recomputed with a running offset, so the result applies cleanly to the
// pre-image. Files and hunks with no covered changes are omitted.
// Returns the empty string when nothing is covered.
func BuildPatch(diff *Diff, sels []Ranger) string {
	if diff == nil || len(sels) == 0 {
		return ""
	}
	ordered := SortAscending(sels)

	covered := func(file, hunk, line int) bool {
		for _, sel := range ordered {
			low, high := sel.Range()
			if RangeContainsLine(low, high, file, hunk, line) {
				return true
			}
		}
		return false
	}

	var sb strings.Builder
	for fileIdx, file := range diff.Files {
		if !fileHasCoveredChange(file, fileIdx, covered) {
			continue
		}

		writeFileHeader(&sb, file)

		// Hunks later in the file shift by the net line delta of the
		// hunks emitted before them.
		delta := 0
		for hunkIdx, hunk := range file.Hunks {
			if !hunkHasCoveredChange(hunk, fileIdx, hunkIdx, covered) {
				continue
			}
			delta += writeHunk(&sb, hunk, fileIdx, hunkIdx, delta, covered)
		}
	}
	return sb.String()
}

// SelectedText returns the prefixed text of every line the range
// [low, high] covers, in tree order, for clipboard yank. Hunk-granularity
// endpoints cover their whole hunks, context lines included.
func SelectedText(diff *Diff, low, high Position) string {
	if diff == nil {
		return ""
	}
	var sb strings.Builder
	for fileIdx, file := range diff.Files {
		for hunkIdx, hunk := range file.Hunks {
			for lineIdx, line := range hunk.Lines {
				if !RangeContainsLine(low, high, fileIdx, hunkIdx, lineIdx) {
					continue
				}
				sb.WriteString(linePrefix(line.Type))
				sb.WriteString(strings.TrimSuffix(line.Content, "\n"))
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

func fileHasCoveredChange(file FileDiff, fileIdx int, covered func(int, int, int) bool) bool {
	for hunkIdx, hunk := range file.Hunks {
		if hunkHasCoveredChange(hunk, fileIdx, hunkIdx, covered) {
			return true
		}
	}
	return false
}

func hunkHasCoveredChange(hunk Hunk, fileIdx, hunkIdx int, covered func(int, int, int) bool) bool {
	for lineIdx, line := range hunk.Lines {
		if line.Type.Changed() && covered(fileIdx, hunkIdx, lineIdx) {
			return true
		}
	}
	return false
}

func writeFileHeader(sb *strings.Builder, file FileDiff) {
	oldName, newName := "/dev/null", "/dev/null"
	if file.OldPath != "" {
		oldName = "a/" + file.OldPath
	}
	if file.NewPath != "" {
		newName = "b/" + file.NewPath
	}
	oldSide := file.OldPath
	if oldSide == "" {
		oldSide = file.NewPath
	}
	newSide := file.NewPath
	if newSide == "" {
		newSide = file.OldPath
	}
	fmt.Fprintf(sb, "diff --git a/%s b/%s\n", oldSide, newSide)
	fmt.Fprintf(sb, "--- %s\n", oldName)
	fmt.Fprintf(sb, "+++ %s\n", newName)
}

// writeHunk emits one hunk with uncovered additions dropped and
// uncovered deletions kept as context, and returns the net line delta
// (newCount - oldCount) this hunk contributes to later hunk headers.
func writeHunk(sb *strings.Builder, hunk Hunk, fileIdx, hunkIdx, delta int, covered func(int, int, int) bool) int {
	oldCount, newCount := 0, 0
	for lineIdx, line := range hunk.Lines {
		switch line.Type {
		case LineContext:
			oldCount++
			newCount++
		case LineDeleted:
			oldCount++
			if !covered(fileIdx, hunkIdx, lineIdx) {
				newCount++ // stays in the post-image as context
			}
		case LineAdded:
			if covered(fileIdx, hunkIdx, lineIdx) {
				newCount++
			}
		}
	}

	newStart := hunk.OldStart + delta
	if newCount == 0 {
		// Every post-image line of an all-deletion hunk was covered;
		// git positions such hunks one line earlier.
		newStart--
	}
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, oldCount, newStart, newCount)
	if hunk.Section != "" {
		header += " " + hunk.Section
	}
	sb.WriteString(header)
	sb.WriteString("\n")

	for lineIdx, line := range hunk.Lines {
		content := strings.TrimSuffix(line.Content, "\n")
		switch line.Type {
		case LineContext:
			sb.WriteString(" " + content + "\n")
		case LineDeleted:
			if covered(fileIdx, hunkIdx, lineIdx) {
				sb.WriteString("-" + content + "\n")
			} else {
				sb.WriteString(" " + content + "\n")
			}
		case LineAdded:
			if covered(fileIdx, hunkIdx, lineIdx) {
				sb.WriteString("+" + content + "\n")
			} else {
				continue
			}
		}
		if line.NoNewline {
			sb.WriteString("\\ No newline at end of file\n")
		}
	}

	return newCount - oldCount
}

// linePrefix returns the unified diff prefix for a line type.
func linePrefix(t LineType) string {
	switch t {
	case LineAdded:
		return "+"
	case LineDeleted:
		return "-"
	default:
		return " "
	}
}
