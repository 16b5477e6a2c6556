package cursor

import (
	"fmt"

	"github.com/glancer/glance/internal/engine/buffer"
	"github.com/glancer/glance/internal/geom"
)

// Position is a cursor cell position. Row indexes a line in the
// buffer; Col indexes a grapheme cluster within that line.
type Position struct {
	Row int
	Col int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Cursor tracks the current cell position and the sticky-column
// memory. The sticky column remembers horizontal intent across a run
// of vertical moves so the cursor can pass through short lines and
// come back out at its original column.
type Cursor struct {
	pos       Position
	sticky    int
	stickySet bool
}

// New creates a cursor at the origin with no sticky column.
func New() *Cursor {
	return &Cursor{}
}

// Position returns the current cell position.
func (c *Cursor) Position() Position {
	return c.pos
}

// StickyColumn returns the remembered column and whether one is set.
func (c *Cursor) StickyColumn() (int, bool) {
	return c.sticky, c.stickySet
}

// Apply executes a single motion against the buffer. pageRows is the
// viewport height in cells, used by the page motions. Every branch
// saturates, so the position invariants hold for any input:
// 0 <= row < max(1, lineCount) and 0 <= col <= lastCol(row).
func (c *Cursor) Apply(m Motion, buf *buffer.Buffer, pageRows int) {
	if m.IsVertical() {
		c.applyVertical(m, buf, pageRows)
		return
	}

	// Any non-vertical motion forgets the sticky column; stale memory
	// must not leak into a later run of vertical moves.
	c.stickySet = false

	switch m {
	case MoveLeftWrap:
		if c.pos.Col > 0 {
			c.pos.Col--
		} else if c.pos.Row > 0 {
			c.pos.Row--
			c.pos.Col = buf.LastCol(c.pos.Row)
		}
	case MoveRightWrap:
		if c.pos.Col+1 < buf.LineLength(c.pos.Row) {
			c.pos.Col++
		} else if c.pos.Row+1 < buf.LineCount() {
			c.pos.Row++
			c.pos.Col = 0
		}
	case MoveToStartOfLine:
		c.pos.Col = 0
	case MoveToEndOfLine:
		c.pos.Col = buf.LastCol(c.pos.Row)
	}
}

// applyVertical moves the row and reconciles the column against the
// sticky memory. The sticky column is captured from the first vertical
// move in a run and restored whenever the landing line is long enough.
func (c *Cursor) applyVertical(m Motion, buf *buffer.Buffer, pageRows int) {
	if !c.stickySet {
		c.sticky = c.pos.Col
		c.stickySet = true
	}

	maxRow := buf.LineCount() - 1
	if maxRow < 0 {
		maxRow = 0
	}

	switch m {
	case MoveUp:
		if c.pos.Row > 0 {
			c.pos.Row--
		}
	case MoveDown:
		if c.pos.Row < maxRow {
			c.pos.Row++
		}
	case MoveUpOnePage:
		c.pos.Row -= pageRows
		if c.pos.Row < 0 {
			c.pos.Row = 0
		}
	case MoveDownOnePage:
		c.pos.Row += pageRows
		if c.pos.Row > maxRow {
			c.pos.Row = maxRow
		}
	}

	length := buf.LineLength(c.pos.Row)
	switch {
	case c.pos.Col >= length:
		// Landed on a shorter line.
		c.pos.Col = saturateLast(length)
	case c.sticky < length:
		c.pos.Col = c.sticky
	default:
		c.pos.Col = saturateLast(length)
	}
}

// ClampTo clamps the position against the buffer and against a
// maximum visible cell grid. Used on resize, where the newly computed
// viewport may no longer contain the cursor cell.
func (c *Cursor) ClampTo(buf *buffer.Buffer, maxCols, maxRows int) {
	if maxRows > 0 && c.pos.Row > maxRows-1 {
		c.pos.Row = maxRows - 1
	}
	if maxRow := buf.LineCount() - 1; c.pos.Row > maxRow {
		if maxRow < 0 {
			maxRow = 0
		}
		c.pos.Row = maxRow
	}
	if c.pos.Row < 0 {
		c.pos.Row = 0
	}

	if maxCols > 0 && c.pos.Col > maxCols-1 {
		c.pos.Col = maxCols - 1
	}
	if last := buf.LastCol(c.pos.Row); c.pos.Col > last {
		c.pos.Col = last
	}
	if c.pos.Col < 0 {
		c.pos.Col = 0
	}
}

// PixelBounds returns the cursor cell's bounding box in content-space
// pixels under the given cell metrics.
func (c *Cursor) PixelBounds(cell geom.Size) geom.Rect {
	return geom.Rect{
		Pos: geom.Point{
			X: float64(c.pos.Col) * cell.W,
			Y: float64(c.pos.Row) * cell.H,
		},
		Size: cell,
	}
}

func saturateLast(length int) int {
	if length > 0 {
		return length - 1
	}
	return 0
}
