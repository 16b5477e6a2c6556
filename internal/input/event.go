package input

import "github.com/glancer/glance/internal/geom"

// Event is an input event delivered by the windowing collaborator.
// The closed set of implementations is KeyEvent, WheelEvent, and
// ResizeEvent.
type Event interface {
	isEvent()
}

// Key identifies a physical key. Character keys arrive as KeyRune with
// the decoded text in KeyEvent.Text.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyCtrlC
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyEscape:
		return "Esc"
	case KeyCtrlC:
		return "Ctrl+C"
	default:
		return "None"
	}
}

// Modifier is a bit mask of modifier keys held during a key event.
type Modifier uint8

// ModNone means no modifier keys are held.
const ModNone Modifier = 0

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// KeyEvent is a key press or release.
type KeyEvent struct {
	// Code is the physical key.
	Code Key

	// Text is the decoded character for KeyRune events, empty
	// otherwise.
	Text string

	// Modifiers holds the active modifier keys.
	Modifiers Modifier

	// Pressed is true for press events, false for release.
	Pressed bool

	// Synthetic marks events the platform fabricates on focus
	// changes rather than actual keystrokes.
	Synthetic bool
}

func (KeyEvent) isEvent() {}

// WheelUnit distinguishes the two wheel delta encodings.
type WheelUnit uint8

const (
	// WheelLines means the deltas are in text lines (cells).
	WheelLines WheelUnit = iota
	// WheelPixels means the deltas are in device pixels.
	WheelPixels
)

// WheelEvent is a mouse-wheel or trackpad scroll event carrying
// either a line delta or a pixel delta.
type WheelEvent struct {
	Unit WheelUnit
	DX   float64
	DY   float64

	// DeviceID identifies the originating device.
	DeviceID string
}

func (WheelEvent) isEvent() {}

// ResizeEvent carries the new viewport size in device pixels.
type ResizeEvent struct {
	Size geom.Size
}

func (ResizeEvent) isEvent() {}
