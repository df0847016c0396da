// Package geom holds small geometric value types used by the exercises
// shipped alongside the selector builder.
package geom

// Rect is an axis-aligned rectangle described by its side lengths.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a rectangle with the given sides.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
