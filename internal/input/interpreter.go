package input

import (
	"fmt"

	"github.com/glancer/glance/internal/engine/cursor"
)

// Interpreter maps raw input events to the closed set of navigation
// and scroll commands, in event order. It also maintains the textual
// status line regenerated on every matched key event.
type Interpreter struct {
	// arrowStep is the pixel nudge applied per unmodified arrow key.
	arrowStep float64

	status string
}

// NewInterpreter creates an interpreter with the given arrow-key
// scroll step in pixels.
func NewInterpreter(arrowStep float64) *Interpreter {
	return &Interpreter{arrowStep: arrowStep}
}

// Status returns the textual status line for the last matched key
// event. Cosmetic; the frame builder appends cursor position.
func (it *Interpreter) Status() string {
	return it.status
}

// Interpret classifies an event into zero or more commands.
//
// Keyboard: only press events produce commands, and synthetic presses
// (fabricated by the platform on focus changes) are dropped entirely.
// Unmodified arrows are pixel scroll nudges, not cursor moves; the
// vim keys h/j/k/l and 0/$ are the cursor motions.
//
// Wheel: line deltas become cell scrolls with the sign inverted, so
// scrolling down moves content up; pixel deltas apply directly.
func (it *Interpreter) Interpret(ev Event) []Command {
	switch e := ev.(type) {
	case KeyEvent:
		return it.interpretKey(e)
	case WheelEvent:
		if e.Unit == WheelLines {
			return []Command{ScrollCells{DCols: -e.DX, DRows: -e.DY}}
		}
		return []Command{ScrollPixels{DX: e.DX, DY: e.DY}}
	case ResizeEvent:
		return []Command{Resize{Size: e.Size}}
	default:
		return nil
	}
}

func (it *Interpreter) interpretKey(e KeyEvent) []Command {
	if e.Synthetic {
		return nil
	}

	cmds := it.matchKey(e)
	if cmds != nil {
		it.status = fmt.Sprintf("key %s", describeKey(e))
	}
	if !e.Pressed {
		// Releases regenerate the status line but never navigate.
		return nil
	}
	return cmds
}

// matchKey returns the commands a key maps to, ignoring press state.
func (it *Interpreter) matchKey(e KeyEvent) []Command {
	switch e.Code {
	case KeyUp:
		if e.Modifiers == ModNone {
			return []Command{ScrollPixels{DY: -it.arrowStep}}
		}
	case KeyDown:
		if e.Modifiers == ModNone {
			return []Command{ScrollPixels{DY: it.arrowStep}}
		}
	case KeyLeft:
		if e.Modifiers == ModNone {
			return []Command{ScrollPixels{DX: -it.arrowStep}}
		}
	case KeyRight:
		if e.Modifiers == ModNone {
			return []Command{ScrollPixels{DX: it.arrowStep}}
		}
	case KeyHome:
		return []Command{MotionCommand{Motion: cursor.MoveToStartOfLine}}
	case KeyEnd:
		return []Command{MotionCommand{Motion: cursor.MoveToEndOfLine}}
	case KeyPageUp:
		return []Command{MotionCommand{Motion: cursor.MoveUpOnePage}}
	case KeyPageDown:
		return []Command{MotionCommand{Motion: cursor.MoveDownOnePage}}
	case KeyEscape, KeyCtrlC:
		return []Command{Quit{}}
	case KeyRune:
		return matchRune(e.Text)
	}
	return nil
}

func matchRune(text string) []Command {
	switch text {
	case "h":
		return []Command{MotionCommand{Motion: cursor.MoveLeftWrap}}
	case "j":
		return []Command{MotionCommand{Motion: cursor.MoveDown}}
	case "k":
		return []Command{MotionCommand{Motion: cursor.MoveUp}}
	case "l":
		return []Command{MotionCommand{Motion: cursor.MoveRightWrap}}
	case "0":
		return []Command{MotionCommand{Motion: cursor.MoveToStartOfLine}}
	case "$":
		return []Command{MotionCommand{Motion: cursor.MoveToEndOfLine}}
	case "q":
		return []Command{Quit{}}
	default:
		return nil
	}
}

func describeKey(e KeyEvent) string {
	if e.Code == KeyRune {
		return e.Text
	}
	return e.Code.String()
}
