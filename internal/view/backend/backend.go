// Package backend abstracts the windowing and rendering collaborator
// behind a capability interface, so the core never depends on platform
// window types. The terminal implementation in this package renders
// frames with tcell; GPU or native-window backends live outside the
// module and only need to satisfy Backend.
package backend

import (
	"github.com/glancer/glance/internal/font"
	"github.com/glancer/glance/internal/geom"
	"github.com/glancer/glance/internal/input"
	"github.com/glancer/glance/internal/view"
)

// Backend is the windowing/rendering capability the application runs
// against.
type Backend interface {
	// Init acquires the surface. It must be called before any other
	// method.
	Init() error

	// Shutdown releases the surface. The Events channel closes once
	// the platform event source drains.
	Shutdown()

	// Size returns the current surface size in device pixels.
	Size() geom.Size

	// Metrics returns the cell metrics for this surface.
	Metrics() font.Metrics

	// Events delivers translated input events. The channel closes
	// when the backend shuts down.
	Events() <-chan input.Event

	// Render draws one frame.
	Render(view.Frame)
}
