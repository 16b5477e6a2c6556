package buffer

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

// Buffer is an immutable ordered sequence of lines. Content and line
// count are fixed after construction; navigation code may hold a
// *Buffer without worrying about it changing underneath.
type Buffer struct {
	lines []string
	// Grapheme-cluster count per line, computed once at construction.
	lengths []int
	path    string
	rev     string
}

// New creates an empty buffer with no source path.
func New() *Buffer {
	return &Buffer{rev: uuid.New().String()}
}

// FromString creates a buffer from raw text. Line endings are
// normalized so that CRLF and lone CR both split like LF.
func FromString(text string) *Buffer {
	b := New()
	b.lines = splitLines(text)
	b.computeLengths()
	return b
}

// Load creates a buffer from the file at path. Loading fails open: any
// read error yields an empty line list with the path still recorded,
// so the caller can display the name it was asked to open. No error
// crosses this boundary.
func Load(path string) *Buffer {
	b := New()
	b.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		return b
	}

	b.lines = splitLines(string(data))
	b.computeLengths()
	return b
}

// Path returns the source path the buffer was loaded from, or the
// empty string for a buffer created without one.
func (b *Buffer) Path() string {
	return b.path
}

// Revision returns the unique identifier assigned at construction.
// Reloading a file produces a new buffer with a new revision, which is
// what log lines correlate on.
func (b *Buffer) Revision() string {
	return b.rev
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer holds no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Line returns the content of the line at row. The second return value
// is false if row is out of range.
func (b *Buffer) Line(row int) (string, bool) {
	if row < 0 || row >= len(b.lines) {
		return "", false
	}
	return b.lines[row], true
}

// LineLength returns the grapheme-cluster count of the line at row, or
// 0 if row is out of range. Columns throughout the engine are measured
// in grapheme clusters, not bytes or code points.
func (b *Buffer) LineLength(row int) int {
	if row < 0 || row >= len(b.lengths) {
		return 0
	}
	return b.lengths[row]
}

// LastCol returns the last valid cursor column on the line at row:
// line length minus one, saturating at zero.
func (b *Buffer) LastCol(row int) int {
	if n := b.LineLength(row); n > 0 {
		return n - 1
	}
	return 0
}

func (b *Buffer) computeLengths() {
	b.lengths = make([]int, len(b.lines))
	for i, line := range b.lines {
		b.lengths[i] = uniseg.GraphemeClusterCount(line)
	}
}

// splitLines splits text into lines the way a text file is read:
// CRLF and CR normalize to LF, empty input yields no lines, and a
// single trailing newline does not produce a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
