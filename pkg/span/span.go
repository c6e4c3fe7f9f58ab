// Package span gives the core's opaque core.Span interface a concrete,
// renderable implementation: a source file indexed by line, and a byte
// range into it that can draw itself as an ascii-art excerpt. Grounded on
// bfppfile.py's BFPPFile/Span pair; the colour decisions bfppfile.py
// delegates to ascii_tools move to the caller (cmd/bfppc), which decides
// whether to colourize via golang.org/x/term.
package span

import (
	"fmt"
	"strings"
)

// File is a named source text, indexed once at construction for fast
// byte-offset-to-line lookups.
type File struct {
	Name     string
	lines    []string
	lineIdxs []int
}

// NewFile builds a File, pre-computing the byte offset each line starts
// at so Span.ShowAsciiArt can binary-search instead of rescanning.
func NewFile(name, content string) *File {
	content = strings.TrimRight(content, "\n\r \t")
	lines := strings.Split(content, "\n")

	idxs := make([]int, 0, len(lines)+1)
	idxs = append(idxs, 0)
	total := 0
	for _, l := range lines {
		total += len(l) + 1
		idxs = append(idxs, total)
	}
	return &File{Name: name, lines: lines, lineIdxs: idxs}
}

// lineOffsetForPos returns the zero-based line number containing byte
// position pos, and pos's offset within that line. Grounded directly on
// BFPPFile.line_offset_for_pos's binary search.
func (f *File) lineOffsetForPos(pos int) (line, offset int) {
	start, end := -1, len(f.lineIdxs)+1
	for start != end-1 {
		mid := start + (end-start)/2
		if mid < 0 || mid >= len(f.lineIdxs) {
			return mid, 0
		}
		if f.lineIdxs[mid] <= pos {
			start = mid
		} else {
			end = mid
		}
	}
	return start, pos - f.lineIdxs[start]
}

func (f *File) String() string {
	return fmt.Sprintf("File(%s, %d lines)", f.Name, len(f.lines))
}

// Span is a byte range [Start, End) into a File. It implements core.Span
// without importing pkg/core, keeping the dependency direction one-way
// (core never needs to know a real span exists).
type Span struct {
	File       *File
	Start, End int
}

// NewSpan builds a Span over file.
func NewSpan(file *File, start, end int) Span {
	return Span{File: file, Start: start, End: end}
}

func lpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// ShowAsciiArt renders the span as a boxed source excerpt, collapsing a
// run of more than 5 lines down to its first two and last two. Grounded
// on Span.show_ascii_art, minus the ascii_tools colour wrapper (colour
// is the caller's decision, via golang.org/x/term).
func (s Span) ShowAsciiArt() []string {
	startLine, startOff := s.File.lineOffsetForPos(s.Start)
	endLine, endOff := s.File.lineOffsetForPos(s.End)

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(s.File.lines) {
		endLine = len(s.File.lines) - 1
	}
	if endLine < startLine {
		endLine = startLine
	}

	numberWidth := len(fmt.Sprint(endLine + 1))
	lSpace := numberWidth + 5

	firstLine := fmt.Sprintf("%s:%d:%d", s.File.Name, startLine+1, endLine+1)

	var firstLines []string
	var lastLine string
	if startLine != endLine {
		firstLines = []string{firstLine, "," + strings.Repeat("-", lSpace-1+startOff) + "V"}
		lastLine = "`" + strings.Repeat("-", lSpace-1+endOff-1) + "^"
	} else {
		firstLines = []string{firstLine}
		dashes := endOff - startOff - 2
		if dashes < 0 {
			dashes = 0
		}
		lastLine = strings.Repeat(" ", lSpace) + strings.Repeat(" ", startOff) + "^" + strings.Repeat("-", dashes) + "^"
	}

	var inbetween []string
	for line := startLine; line <= endLine; line++ {
		lineSt := lpad(fmt.Sprint(line+1), numberWidth)
		text := ""
		if line >= 0 && line < len(s.File.lines) {
			text = s.File.lines[line]
		}
		inbetween = append(inbetween, fmt.Sprintf("| %s | %s", lineSt, text))
	}
	if len(inbetween) > 5 {
		collapsed := fmt.Sprintf("| %s| ...", strings.Repeat(".", numberWidth+1))
		inbetween = append(append(append([]string{}, inbetween[:2]...), collapsed), inbetween[len(inbetween)-2:]...)
	}

	res := append(append(firstLines, inbetween...), lastLine)
	out := make([]string, len(res))
	for i, l := range res {
		out[i] = "    " + l
	}
	return out
}

func (s Span) String() string {
	startLine, startOff := s.File.lineOffsetForPos(s.Start)
	endLine, endOff := s.File.lineOffsetForPos(s.End)
	return fmt.Sprintf("%s@%d:%d..%d:%d", s.File.Name, startLine+1, startOff, endLine+2, endOff)
}
