package input

import (
	"github.com/glancer/glance/internal/engine/cursor"
	"github.com/glancer/glance/internal/geom"
)

// Command is a classified navigation or scroll command produced by the
// interpreter. The closed set of implementations is MotionCommand,
// ScrollPixels, ScrollCells, Resize, and Quit.
type Command interface {
	isCommand()
}

// MotionCommand moves the cursor; the viewport is reconciled after it
// executes.
type MotionCommand struct {
	Motion cursor.Motion
}

func (MotionCommand) isCommand() {}

// ScrollPixels adds a raw pixel delta to the scroll offset without
// touching the cursor.
type ScrollPixels struct {
	DX float64
	DY float64
}

func (ScrollPixels) isCommand() {}

// ScrollCells scrolls by a cell-unit delta, converted to pixels using
// the current cell metrics.
type ScrollCells struct {
	DCols float64
	DRows float64
}

func (ScrollCells) isCommand() {}

// Resize clamps the cursor against the newly visible cell grid and
// forwards the new size to the viewport controller.
type Resize struct {
	Size geom.Size
}

func (Resize) isCommand() {}

// Quit ends the session.
type Quit struct{}

func (Quit) isCommand() {}
