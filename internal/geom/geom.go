// Package geom provides the pixel-space geometry types shared by the
// view packages: points, sizes, and rectangles in device pixels.
package geom

import "fmt"

// Point is a position in device pixels.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Size is a width and height in device pixels.
type Size struct {
	W float64
	H float64
}

// IsZero returns true if either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.W <= 0 || s.H <= 0
}

// String returns a human-readable representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%.1fx%.1f", s.W, s.H)
}

// Rect is an axis-aligned rectangle described by its top-left corner
// and its size.
type Rect struct {
	Pos  Point
	Size Size
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.Pos.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Pos.X + r.Size.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Pos.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Size.H }

// Contains returns true if the rectangle fully contains other.
func (r Rect) Contains(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("%s at %s", r.Size, r.Pos)
}
