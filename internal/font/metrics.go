// Package font defines the query interface to the font-metrics
// collaborator. The core only ever asks for the size of a single
// monospace cell at a given font size; rasterization, shaping, and
// font file loading live behind whatever backend implements Metrics.
package font

import (
	"github.com/rivo/uniseg"

	"github.com/glancer/glance/internal/geom"
)

// Metrics reports monospace cell dimensions for a font size.
// Implementations must be pure queries; callers may cache results
// externally but the interface promises no caching of its own.
type Metrics interface {
	// CellSize returns the advance width and line height of one
	// monospace cell at the given font size, in device pixels.
	CellSize(fontSize float64) geom.Size
}

// Fixed is a Metrics implementation with a constant cell size,
// independent of the requested font size. Used in tests and by
// backends whose cell geometry does not derive from font data.
type Fixed struct {
	W float64
	H float64
}

// CellSize implements Metrics.
func (f Fixed) CellSize(float64) geom.Size {
	return geom.Size{W: f.W, H: f.H}
}

// Unit returns metrics where one cell is one pixel on each axis.
// Terminal backends use this so that pixel and cell coordinates
// coincide.
func Unit() Fixed {
	return Fixed{W: 1, H: 1}
}

// MeasureText returns the pixel bounds of a single line of text under
// the given metrics. Width is the grapheme-cluster count times the
// cell width; the monospace assumption holds for every backend the
// core supports.
func MeasureText(m Metrics, fontSize float64, text string) geom.Size {
	cell := m.CellSize(fontSize)
	return geom.Size{
		W: float64(uniseg.GraphemeClusterCount(text)) * cell.W,
		H: cell.H,
	}
}
