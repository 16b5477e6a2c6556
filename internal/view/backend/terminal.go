package backend

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/glancer/glance/internal/font"
	"github.com/glancer/glance/internal/geom"
	"github.com/glancer/glance/internal/input"
	"github.com/glancer/glance/internal/view"
)

// terminalDeviceID tags wheel events from the terminal mouse.
const terminalDeviceID = "terminal"

// Terminal implements Backend on a tcell screen. One terminal cell is
// one pixel, so the pixel-based engine maps onto the character grid
// without conversion.
type Terminal struct {
	screen     tcell.Screen
	events     chan input.Event
	wheelLines float64

	done     chan struct{}
	doneOnce sync.Once
}

// NewTerminal creates a terminal backend. wheelLines is the line delta
// reported per wheel tick.
func NewTerminal(wheelLines int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen, wheelLines), nil
}

func newTerminal(screen tcell.Screen, wheelLines int) *Terminal {
	if wheelLines < 1 {
		wheelLines = 1
	}
	return &Terminal{
		screen:     screen,
		events:     make(chan input.Event, 16),
		wheelLines: float64(wheelLines),
		done:       make(chan struct{}),
	}
}

// Init initializes the screen and starts the event pump.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()

	go t.pump()
	return nil
}

// Shutdown finalizes the screen and releases the event pump, which
// may be blocked on a full events channel. The pump closes the events
// channel on its way out. Idempotent.
func (t *Terminal) Shutdown() {
	t.doneOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Size returns the screen size. Cells are pixels here.
func (t *Terminal) Size() geom.Size {
	w, h := t.screen.Size()
	return geom.Size{W: float64(w), H: float64(h)}
}

// Metrics returns unit cell metrics: one cell is one pixel on each
// axis.
func (t *Terminal) Metrics() font.Metrics {
	return font.Unit()
}

// Events returns the translated event stream.
func (t *Terminal) Events() <-chan input.Event {
	return t.events
}

// pump translates tcell events until the screen is finalized.
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if translated := t.translate(ev); translated != nil {
			select {
			case t.events <- translated:
			case <-t.done:
				return
			}
		}
	}
}

// translate converts a tcell event into an engine input event.
// Returns nil for events the engine has no use for. Terminals only
// report key presses, so every key event arrives with Pressed set and
// never Synthetic.
func (t *Terminal) translate(ev tcell.Event) input.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return translateKey(e)
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return input.ResizeEvent{Size: geom.Size{W: float64(w), H: float64(h)}}
	default:
		return nil
	}
}

func translateKey(e *tcell.EventKey) input.Event {
	ke := input.KeyEvent{Pressed: true, Modifiers: translateMods(e.Modifiers())}

	switch e.Key() {
	case tcell.KeyRune:
		ke.Code = input.KeyRune
		ke.Text = string(e.Rune())
	case tcell.KeyUp:
		ke.Code = input.KeyUp
	case tcell.KeyDown:
		ke.Code = input.KeyDown
	case tcell.KeyLeft:
		ke.Code = input.KeyLeft
	case tcell.KeyRight:
		ke.Code = input.KeyRight
	case tcell.KeyHome:
		ke.Code = input.KeyHome
	case tcell.KeyEnd:
		ke.Code = input.KeyEnd
	case tcell.KeyPgUp:
		ke.Code = input.KeyPageUp
	case tcell.KeyPgDn:
		ke.Code = input.KeyPageDown
	case tcell.KeyEscape:
		ke.Code = input.KeyEscape
	case tcell.KeyCtrlC:
		ke.Code = input.KeyCtrlC
	default:
		return nil
	}
	return ke
}

func translateMods(m tcell.ModMask) input.Modifier {
	var mods input.Modifier
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModMeta
	}
	return mods
}

// translateMouse maps wheel buttons to line-delta wheel events.
// Wheel up is a positive line delta; the interpreter inverts the sign
// when converting to a scroll.
func (t *Terminal) translateMouse(e *tcell.EventMouse) input.Event {
	var dx, dy float64
	switch {
	case e.Buttons()&tcell.WheelUp != 0:
		dy = t.wheelLines
	case e.Buttons()&tcell.WheelDown != 0:
		dy = -t.wheelLines
	case e.Buttons()&tcell.WheelLeft != 0:
		dx = t.wheelLines
	case e.Buttons()&tcell.WheelRight != 0:
		dx = -t.wheelLines
	default:
		return nil
	}
	return input.WheelEvent{
		Unit:     input.WheelLines,
		DX:       dx,
		DY:       dy,
		DeviceID: terminalDeviceID,
	}
}

// Render draws a frame: background, fill rects, then text.
func (t *Terminal) Render(f view.Frame) {
	width, height := t.screen.Size()

	bgStyle := tcell.StyleDefault.Background(toTcell(f.Background))
	t.screen.Fill(' ', bgStyle)

	for _, op := range f.Rects {
		t.fillRect(op, width, height)
	}
	for _, op := range f.Texts {
		t.drawText(op, width, height)
	}

	t.screen.Show()
}

func (t *Terminal) fillRect(op view.RectOp, width, height int) {
	style := tcell.StyleDefault.Background(toTcell(op.Color))
	left, top := px(op.Rect.Left()), px(op.Rect.Top())
	right, bottom := px(op.Rect.Right()), px(op.Rect.Bottom())

	for y := top; y < bottom && y < height; y++ {
		for x := left; x < right && x < width; x++ {
			if x >= 0 && y >= 0 {
				t.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// drawText writes one line of text, advancing by terminal cell width
// per grapheme cluster. The foreground color is applied over whatever
// background the cell already carries, so text over the cursor rect
// keeps the highlight.
func (t *Terminal) drawText(op view.TextOp, width, height int) {
	y := px(op.Pos.Y)
	if y < 0 || y >= height {
		return
	}

	fg := toTcell(op.Color)
	x := px(op.Pos.X)

	gr := uniseg.NewGraphemes(op.Text)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		if x >= width {
			return
		}
		if x >= 0 {
			_, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
			runes := gr.Runes()
			t.screen.SetContent(x, y, runes[0], runes[1:], style.Foreground(fg))
		}
		x += w
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
