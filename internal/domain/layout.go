package domain

import "math"

// Side distinguishes card placement from slot placement. The two sides of
// the board use different column counts and jitter for some layouts.
type Side string

const (
	SideCards Side = "cards"
	SideSlots Side = "slots"
)

// MaxShapeSize caps the uniform card size in pixels.
const MaxShapeSize = 90.0

// cellFill is the fraction of a grid cell a shape may occupy, keeping
// neighbors from overlapping even under maximum jitter.
const cellFill = 0.55

// ChooseLayout maps a shape count to its layout variant.
func ChooseLayout(count int) LayoutVariant {
	switch {
	case count <= 2:
		return LayoutLine
	case count == 3:
		return LayoutStaggered
	case count == 4:
		return LayoutGrid
	default:
		return LayoutScatter
	}
}

// Columns returns the column count for one side of the board.
func (v LayoutVariant) Columns(side Side) int {
	switch v {
	case LayoutStaggered:
		if side == SideCards {
			return 2
		}
		return 1
	case LayoutGrid, LayoutScatter:
		return 2
	default:
		return 1
	}
}

// Jitter returns the positional jitter fraction for one side of the board.
// Slots jitter less than cards so the outlines stay tidy.
func (v LayoutVariant) Jitter(side Side) float64 {
	switch v {
	case LayoutStaggered:
		if side == SideCards {
			return 0.015
		}
		return 0
	case LayoutGrid:
		return 0.01
	case LayoutScatter:
		if side == SideCards {
			return 0.03
		}
		return 0.015
	default:
		return 0
	}
}

// Range is a closed coordinate interval in pixels.
type Range struct {
	Min, Max float64
}

func (r Range) width() float64 { return r.Max - r.Min }

// GeneratePositions arranges count cell centers into a columns-wide grid
// spanning xRange and yRange, row-major. A non-zero jitter adds uniform
// noise in [-jitter, jitter] scaled by the range width to each coordinate.
// The returned size is the uniform shape size fitting the densest cell.
func GeneratePositions(count, columns int, xRange, yRange Range, jitter float64, rng RNG) ([]Point, float64) {
	if columns < 1 {
		columns = 1
	}
	rows := int(math.Ceil(float64(count) / float64(columns)))

	positions := make([]Point, count)
	for idx := range count {
		row := idx / columns
		col := idx % columns
		x := xRange.Min + (float64(col)+0.5)/float64(columns)*xRange.width()
		y := yRange.Min + (float64(row)+0.5)/float64(rows)*yRange.width()

		if jitter > 0 {
			x += uniform(rng, -jitter, jitter) * xRange.width()
			y += uniform(rng, -jitter, jitter) * yRange.width()
		}

		positions[idx] = Point{X: x, Y: y}
	}

	cellW := xRange.width() / float64(columns)
	cellH := yRange.width() / float64(rows)
	size := math.Min(MaxShapeSize, math.Min(cellW*cellFill, cellH*cellFill))

	return positions, size
}

// uniform returns a random float in [lo, hi).
func uniform(rng RNG, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
