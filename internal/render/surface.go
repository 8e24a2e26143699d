// Package render turns node scales into triangle line groups on a 2D surface.
package render

import (
	"image/color"
	"math"
)

// Transform translates by (X, Y) after rotating by Angle radians about the
// origin.
type Transform struct {
	X, Y  float64
	Angle float64
}

// Apply maps a point from local to surface coordinates.
func (t Transform) Apply(x, y float64) (float64, float64) {
	sin, cos := math.Sincos(t.Angle)
	return x*cos - y*sin + t.X, x*sin + y*cos + t.Y
}

// Stroke is the line style.
type Stroke struct {
	Width float64
	Color color.Color
}

// Surface is the drawing target the renderer needs.
type Surface interface {
	Size() (width, height int)
	Clear(c color.Color)
	StrokeLine(t Transform, x0, y0, x1, y1 float64, s Stroke)
}
