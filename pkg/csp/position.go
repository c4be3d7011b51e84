package csp

import (
	"sort"
	"strings"
)

// LineIndex converts byte offsets in a document into 1-based line/column
// positions. Build it once per document and reuse it for every finding.
type LineIndex struct {
	// starts[i] is the byte offset of the first character of line i+1.
	starts []int
	length int
}

// NewLineIndex indexes the line starts of text.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); {
		n := strings.IndexByte(text[i:], '\n')
		if n < 0 {
			break
		}
		i += n + 1
		starts = append(starts, i)
	}
	return &LineIndex{starts: starts, length: len(text)}
}

// Position returns the 1-based line and column of a byte offset. Offsets
// outside the document are clamped to its bounds.
func (ix *LineIndex) Position(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > ix.length {
		offset = ix.length
	}
	// First line start strictly after offset; the line is the one before it.
	i := sort.SearchInts(ix.starts, offset+1) - 1
	return i + 1, offset - ix.starts[i] + 1
}
