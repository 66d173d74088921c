package domain

import (
	"fmt"
	"math"
)

// starInnerRatio is the inner-to-outer radius ratio of the 5-point star.
const starInnerRatio = 0.45

// Vertices returns the polygon outline of a shape centered at c with the
// given bounding size. Circle and square carry no vertex list; they are
// drawn straight from their bounding box and yield (nil, nil). Any shape
// outside the vocabulary is a programmer error and fails loudly.
func Vertices(shape Shape, c Point, size float64) ([]Point, error) {
	r := size / 2
	switch shape {
	case ShapeTriangle:
		// Isoceles, apex up, inscribed in the bounding box.
		return []Point{
			{X: c.X, Y: c.Y - r},
			{X: c.X - r, Y: c.Y + r},
			{X: c.X + r, Y: c.Y + r},
		}, nil
	case ShapeDiamond:
		return []Point{
			{X: c.X, Y: c.Y - r},
			{X: c.X + r, Y: c.Y},
			{X: c.X, Y: c.Y + r},
			{X: c.X - r, Y: c.Y},
		}, nil
	case ShapeHexagon:
		pts := make([]Point, 6)
		for i := range 6 {
			angle := math.Pi/6 + float64(i)*math.Pi/3
			pts[i] = Point{
				X: c.X + r*math.Cos(angle),
				Y: c.Y + r*math.Sin(angle),
			}
		}
		return pts, nil
	case ShapeStar:
		pts := make([]Point, 10)
		for i := range 10 {
			angle := math.Pi/2 + float64(i)*math.Pi/5
			radius := r
			if i%2 == 1 {
				radius = r * starInnerRatio
			}
			pts[i] = Point{
				X: c.X + radius*math.Cos(angle),
				Y: c.Y + radius*math.Sin(angle),
			}
		}
		return pts, nil
	case ShapeCircle, ShapeSquare:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
}
