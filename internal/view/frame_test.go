package view

import (
	"strings"
	"testing"

	"github.com/glancer/glance/internal/engine/buffer"
	"github.com/glancer/glance/internal/engine/cursor"
	"github.com/glancer/glance/internal/font"
	"github.com/glancer/glance/internal/geom"
	"github.com/glancer/glance/internal/view/viewport"
)

var testCell = font.Fixed{W: 8, H: 16}

func buildTestFrame(buf *buffer.Buffer, cur *cursor.Cursor, vc *viewport.Controller) Frame {
	return Build(buf, cur, vc, testCell, 14, DefaultTheme(), "")
}

func rowTexts(f Frame) []TextOp {
	// Rows come first; label and status are the final two ops.
	return f.Texts[:len(f.Texts)-2]
}

func TestBuildRowsAndPlaceholders(t *testing.T) {
	buf := buffer.FromString("alpha\nbeta")
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})

	f := buildTestFrame(buf, cursor.New(), vc)

	rows := rowTexts(f)
	if len(rows) != 10 {
		t.Fatalf("expected 10 row ops for a 160px viewport, got %d", len(rows))
	}
	if rows[0].Text != "alpha" || rows[1].Text != "beta" {
		t.Errorf("unexpected row content %q, %q", rows[0].Text, rows[1].Text)
	}
	for i, op := range rows[2:] {
		if op.Text != "~" {
			t.Errorf("row %d past EOF should be %q, got %q", i+2, "~", op.Text)
		}
	}
}

func TestBuildRowPositions(t *testing.T) {
	buf := buffer.FromString("alpha\nbeta")
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})

	f := buildTestFrame(buf, cursor.New(), vc)

	rows := rowTexts(f)
	for i, op := range rows {
		want := geom.Point{X: 0, Y: float64(i) * 16}
		if op.Pos != want {
			t.Errorf("row %d at %v, expected %v", i, op.Pos, want)
		}
	}
}

func TestBuildScrolledRows(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	buf := buffer.FromString(strings.Join(lines, "\n"))

	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})
	vc.ScrollBy(0, 3*16+4) // three whole rows plus a 4px remainder

	f := buildTestFrame(buf, cursor.New(), vc)

	rows := rowTexts(f)
	if rows[0].Text != lines[3] {
		t.Errorf("expected first visible row %q, got %q", lines[3], rows[0].Text)
	}
	// The fractional remainder shifts the draw origin up by 4px.
	if rows[0].Pos.Y != -4 {
		t.Errorf("expected first row at y=-4, got %v", rows[0].Pos.Y)
	}
}

func TestBuildNegativeScrollShowsPlaceholders(t *testing.T) {
	buf := buffer.FromString("alpha")
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})
	vc.ScrollBy(0, -32) // content pulled down two rows

	f := buildTestFrame(buf, cursor.New(), vc)

	rows := rowTexts(f)
	if rows[0].Text != "~" || rows[1].Text != "~" {
		t.Errorf("rows above the buffer should be placeholders, got %q, %q", rows[0].Text, rows[1].Text)
	}
	if rows[2].Text != "alpha" {
		t.Errorf("expected buffer content on third row, got %q", rows[2].Text)
	}
}

func TestBuildLabelUsesPath(t *testing.T) {
	buf := buffer.Load("/nonexistent")
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})

	f := buildTestFrame(buf, cursor.New(), vc)

	label := f.Texts[len(f.Texts)-2]
	if label.Text != "/nonexistent" {
		t.Errorf("expected label %q, got %q", "/nonexistent", label.Text)
	}
	// Right-aligned: 12 graphemes * 8px from the right edge.
	if label.Pos.X != 400-12*8 {
		t.Errorf("expected label x %v, got %v", 400-12*8, label.Pos.X)
	}
}

func TestBuildLabelFallsBackToNoName(t *testing.T) {
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})

	f := buildTestFrame(buffer.New(), cursor.New(), vc)

	label := f.Texts[len(f.Texts)-2]
	if label.Text != "[No Name]" {
		t.Errorf("expected fallback label, got %q", label.Text)
	}
}

func TestBuildCursorRect(t *testing.T) {
	buf := buffer.FromString(strings.Repeat("x", 80))
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})
	vc.ScrollBy(10, 20)

	cur := cursor.New()
	cur.Apply(cursor.MoveRightWrap, buf, 10)
	cur.Apply(cursor.MoveRightWrap, buf, 10)

	f := buildTestFrame(buf, cur, vc)

	if len(f.Rects) != 1 {
		t.Fatalf("expected exactly one rect op, got %d", len(f.Rects))
	}
	want := geom.Rect{
		Pos:  geom.Point{X: 2*8 - 10, Y: -20},
		Size: geom.Size{W: 8, H: 16},
	}
	if f.Rects[0].Rect != want {
		t.Errorf("expected cursor rect %v, got %v", want, f.Rects[0].Rect)
	}
}

func TestBuildStatusLine(t *testing.T) {
	buf := buffer.FromString("abc")
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})

	f := Build(buf, cursor.New(), vc, testCell, 14, DefaultTheme(), "key j")

	status := f.Texts[len(f.Texts)-1]
	if status.Text != "key j  0:0" {
		t.Errorf("unexpected status text %q", status.Text)
	}
	if status.Pos != (geom.Point{X: 0, Y: 160 - 16}) {
		t.Errorf("unexpected status position %v", status.Pos)
	}
}

func TestBuildDegenerateMetrics(t *testing.T) {
	buf := buffer.FromString("abc")
	vc := viewport.New(geom.Rect{Size: geom.Size{W: 400, H: 160}})

	f := Build(buf, cursor.New(), vc, font.Fixed{}, 14, DefaultTheme(), "")

	if len(f.Texts) != 0 || len(f.Rects) != 0 {
		t.Error("degenerate cell metrics should produce an empty frame")
	}
}
