package csp

import "testing"

func TestLineIndex_Position(t *testing.T) {
	text := "abc\ndef\n\nghi"
	ix := NewLineIndex(text)

	cases := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},  // 'a'
		{2, 1, 3},  // 'c'
		{3, 1, 4},  // the newline itself
		{4, 2, 1},  // 'd'
		{8, 3, 1},  // empty line
		{9, 4, 1},  // 'g'
		{11, 4, 3}, // 'i'
		{12, 4, 4}, // one past the end
	}
	for _, c := range cases {
		line, column := ix.Position(c.offset)
		if line != c.line || column != c.column {
			t.Errorf("Position(%d) = (%d,%d), want (%d,%d)", c.offset, line, column, c.line, c.column)
		}
	}
}

func TestLineIndex_Clamping(t *testing.T) {
	ix := NewLineIndex("ab")

	if line, column := ix.Position(-5); line != 1 || column != 1 {
		t.Errorf("negative offset should clamp to 1:1, got %d:%d", line, column)
	}
	if line, column := ix.Position(100); line != 1 || column != 3 {
		t.Errorf("overlong offset should clamp to end, got %d:%d", line, column)
	}
}

func TestLineIndex_EmptyText(t *testing.T) {
	ix := NewLineIndex("")
	if line, column := ix.Position(0); line != 1 || column != 1 {
		t.Errorf("empty text Position(0) = %d:%d, want 1:1", line, column)
	}
}
