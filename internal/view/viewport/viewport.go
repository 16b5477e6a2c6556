// Package viewport provides the viewport controller: the visible
// pixel region plus a continuous scroll offset, and the scroll-into-
// view reconciliation that keeps the cursor cell inside the region.
package viewport

import (
	"math"

	"github.com/glancer/glance/internal/geom"
)

// Controller tracks the viewport rectangle and the scroll offset.
// The offset is subtracted from content-space coordinates before
// drawing; its sign and magnitude are unconstrained except as produced
// by EnsureVisible.
type Controller struct {
	view   geom.Rect
	scroll geom.Point
}

// New creates a controller for the given viewport rectangle with a
// zero scroll offset.
func New(view geom.Rect) *Controller {
	return &Controller{view: view}
}

// Rect returns the viewport rectangle in device pixels.
func (c *Controller) Rect() geom.Rect {
	return c.view
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() geom.Point {
	return c.scroll
}

// Resize replaces the viewport size. The scroll offset is left alone;
// reconciliation happens on the next cursor-moving command.
func (c *Controller) Resize(size geom.Size) {
	c.view.Size = size
}

// ScrollBy adds a raw pixel delta to the scroll offset. Used for
// pixel-precision wheel and arrow-key scroll input, independent of the
// cursor.
func (c *Controller) ScrollBy(dx, dy float64) {
	c.scroll.X += dx
	c.scroll.Y += dy
}

// ScrollByCells converts a cell-unit delta to pixels under the given
// cell metrics and adds it to the scroll offset. Used for line-based
// wheel input.
func (c *Controller) ScrollByCells(dcols, drows float64, cell geom.Size) {
	c.scroll.X += dcols * cell.W
	c.scroll.Y += drows * cell.H
}

// EnsureVisible shifts the scroll offset the minimal amount needed to
// bring bounds (the cursor cell in content-space pixels) inside the
// window the viewport currently shows. Each of the four edges is
// clamped independently, in fixed order: right, left, bottom, top.
// The edge tests use the at-or-before (<=) convention, so a cell
// flush against an edge keeps the window pinned to it; applying the
// method twice without an intervening move is a no-op.
func (c *Controller) EnsureVisible(bounds geom.Rect) {
	win := geom.Rect{Pos: c.view.Pos.Add(c.scroll), Size: c.view.Size}

	if win.Right() <= bounds.Right() {
		win.Pos.X = bounds.Right() - win.Size.W
	}
	if bounds.Left() <= win.Left() {
		win.Pos.X = bounds.Left()
	}
	if win.Bottom() <= bounds.Bottom() {
		win.Pos.Y = bounds.Bottom() - win.Size.H
	}
	if bounds.Top() <= win.Top() {
		win.Pos.Y = bounds.Top()
	}

	c.scroll = win.Pos.Sub(c.view.Pos)
}

// VisibleCells returns how many whole cells fit in the viewport on
// each axis, never less than one per axis.
func (c *Controller) VisibleCells(cell geom.Size) (cols, rows int) {
	cols, rows = 1, 1
	if cell.W > 0 {
		if n := int(math.Floor(c.view.Size.W / cell.W)); n > 1 {
			cols = n
		}
	}
	if cell.H > 0 {
		if n := int(math.Floor(c.view.Size.H / cell.H)); n > 1 {
			rows = n
		}
	}
	return cols, rows
}
