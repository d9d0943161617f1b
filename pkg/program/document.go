// Package program holds the document model for HP-35s-style RPN program
// text: line classification, the single-label invariant, and the mapping
// between buffer lines and program lines.
package program

import "strings"

// Document is the read/cursor surface the core needs from a text buffer.
// Lines are 1-based. Implementations own storage and cursor placement;
// the core never mutates a document except through InsertLine.
type Document interface {
	// LineCount returns the number of lines in the document.
	LineCount() int

	// Line returns the text of line n without its newline.
	// Out-of-range line numbers return the empty string.
	Line(n int) string

	// CurrentLine returns the text of the line under the cursor.
	CurrentLine() string

	// Cursor returns the 1-based line number of the cursor.
	Cursor() int

	// SetCursor moves the cursor to line n, clamped to the document.
	SetCursor(n int)

	// InsertLine inserts text as a new line below the cursor and moves
	// the cursor onto it.
	InsertLine(text string)
}

// SaveCursor captures the document cursor and returns a function that
// restores it. Every operation that can fail mid-scan defers or calls the
// restore on its failure paths so a failed operation never moves the cursor.
func SaveCursor(doc Document) func() {
	n := doc.Cursor()
	return func() { doc.SetCursor(n) }
}

// Buffer is an in-memory Document built from file content.
// It handles both LF and CRLF line endings.
type Buffer struct {
	lines  []string
	cursor int
}

// NewBuffer creates a Buffer from raw file content.
// A trailing newline does not produce a final empty line.
func NewBuffer(content string) *Buffer {
	content = strings.TrimSuffix(content, "\n")
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return &Buffer{lines: lines, cursor: 1}
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of line n, or "" when n is out of range.
func (b *Buffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

// CurrentLine returns the text of the cursor line.
func (b *Buffer) CurrentLine() string { return b.Line(b.cursor) }

// Cursor returns the 1-based cursor line number.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor to line n, clamped to [1, LineCount].
func (b *Buffer) SetCursor(n int) {
	if n < 1 {
		n = 1
	}
	if last := len(b.lines); n > last && last > 0 {
		n = last
	}
	b.cursor = n
}

// InsertLine inserts text below the cursor and moves the cursor onto it.
// Inserting into an empty buffer creates line 1.
func (b *Buffer) InsertLine(text string) {
	if len(b.lines) == 0 {
		b.lines = []string{text}
		b.cursor = 1
		return
	}
	at := b.cursor // insert after this line
	b.lines = append(b.lines[:at], append([]string{text}, b.lines[at:]...)...)
	b.cursor = at + 1
}

// Text reassembles the buffer into file content with a trailing newline.
// An empty buffer yields the empty string.
func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}
