package view

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/glancer/glance/internal/engine/buffer"
	"github.com/glancer/glance/internal/engine/cursor"
	"github.com/glancer/glance/internal/font"
	"github.com/glancer/glance/internal/geom"
	"github.com/glancer/glance/internal/view/viewport"
)

// placeholder marks visible rows past the end of the buffer.
const placeholder = "~"

// noName labels a buffer that has no source path.
const noName = "[No Name]"

// TextOp instructs the renderer to draw one line of text with its
// top-left corner at Pos, in pixel coordinates already adjusted for
// the scroll offset.
type TextOp struct {
	Pos   geom.Point
	Text  string
	Color colorful.Color
}

// RectOp instructs the renderer to fill a rectangle.
type RectOp struct {
	Rect  geom.Rect
	Color colorful.Color
}

// Frame is one rendered frame: fill rects first, then text on top.
type Frame struct {
	Background colorful.Color
	Rects      []RectOp
	Texts      []TextOp
}

// Build reads the buffer, cursor, and viewport controller and emits
// the draw instructions for one frame. The renderer receiving the
// frame needs no knowledge of scroll state; every position is final.
func Build(buf *buffer.Buffer, cur *cursor.Cursor, vc *viewport.Controller,
	m font.Metrics, fontSize float64, th Theme, status string) Frame {

	cell := m.CellSize(fontSize)
	view := vc.Rect()
	scroll := vc.Offset()

	frame := Frame{Background: th.Background}
	if cell.IsZero() {
		return frame
	}

	// Cursor cell highlight, under the text.
	pos := cur.Position()
	frame.Rects = append(frame.Rects, RectOp{
		Rect: geom.Rect{
			Pos: geom.Point{
				X: view.Pos.X + float64(pos.Col)*cell.W - scroll.X,
				Y: view.Pos.Y + float64(pos.Row)*cell.H - scroll.Y,
			},
			Size: cell,
		},
		Color: th.Cursor,
	})

	// Buffer rows. The first visible line comes from the whole-cell
	// part of the vertical scroll; the fractional remainder shifts the
	// draw origin so scrolling stays pixel-continuous.
	startLine := int(math.Floor(scroll.Y / cell.H))
	startX := -scroll.X
	startY := -(scroll.Y - float64(startLine)*cell.H)

	totalRows := int(math.Ceil(view.Size.H / cell.H))
	for r := 0; r < totalRows; r++ {
		text, ok := buf.Line(startLine + r)
		if !ok {
			text = placeholder
		}
		frame.Texts = append(frame.Texts, TextOp{
			Pos: geom.Point{
				X: view.Pos.X + startX,
				Y: view.Pos.Y + startY + float64(r)*cell.H,
			},
			Text:  text,
			Color: th.Foreground,
		})
	}

	// File-name label, right-aligned along the top edge.
	label := buf.Path()
	if label == "" {
		label = noName
	}
	labelW := font.MeasureText(m, fontSize, label).W
	frame.Texts = append(frame.Texts, TextOp{
		Pos: geom.Point{
			X: view.Pos.X + view.Size.W - labelW,
			Y: view.Pos.Y,
		},
		Text:  label,
		Color: th.Label,
	})

	// Status line along the bottom edge. Cosmetic.
	frame.Texts = append(frame.Texts, TextOp{
		Pos: geom.Point{
			X: view.Pos.X,
			Y: view.Pos.Y + view.Size.H - cell.H,
		},
		Text:  statusText(status, pos),
		Color: th.Label,
	})

	return frame
}

func statusText(status string, pos cursor.Position) string {
	if status == "" {
		return pos.String()
	}
	return fmt.Sprintf("%s  %s", status, pos)
}
