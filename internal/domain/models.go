package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Shape identifies one entry of the closed shape vocabulary.
type Shape string

const (
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeStar     Shape = "star"
	ShapeHexagon  Shape = "hexagon"
	ShapeDiamond  Shape = "diamond"
)

// Shapes lists the full vocabulary in canonical order.
var Shapes = []Shape{ShapeCircle, ShapeSquare, ShapeTriangle, ShapeStar, ShapeHexagon, ShapeDiamond}

// RGB is a 3-byte color triple.
type RGB struct {
	R, G, B uint8
}

// Color pairs a human-readable name with its RGB value.
type Color struct {
	Name string
	RGB  RGB
}

// Colors is the card palette.
var Colors = []Color{
	{"red", RGB{248, 113, 113}},    // #f87171
	{"yellow", RGB{250, 204, 21}},  // #facc15
	{"blue", RGB{96, 165, 250}},    // #60a5fa
	{"green", RGB{74, 222, 128}},   // #4ade80
	{"purple", RGB{192, 132, 252}}, // #c084fc
	{"orange", RGB{251, 146, 60}},  // #fb923c
}

// Point is a 2D canvas coordinate in pixels.
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface size in pixels.
type Canvas struct {
	Width, Height int
}

// ShapeSpec binds one colored card to its outline slot.
type ShapeSpec struct {
	Shape     Shape
	ColorName string
	ColorRGB  RGB
	Start     Point
	Target    Point
	Size      float64
}

// Label returns the card label used in prompts, e.g. "red circle".
func (s ShapeSpec) Label() string {
	return s.ColorName + " " + string(s.Shape)
}

// LayoutVariant names an arrangement strategy for cards and slots.
type LayoutVariant string

const (
	LayoutLine      LayoutVariant = "line"
	LayoutStaggered LayoutVariant = "staggered"
	LayoutGrid      LayoutVariant = "grid"
	LayoutScatter   LayoutVariant = "scatter"
)

// Difficulty controls how many cards a puzzle gets.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a raw difficulty string. Empty input passes
// through as empty so callers can fall back to their configured level.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(raw) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, "":
		return Difficulty(raw), nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// ShapeCount samples the number of cards for this difficulty.
func (d Difficulty) ShapeCount(rng RNG) int {
	switch d {
	case DifficultyEasy:
		return 2 + rng.Intn(2) // 2-3
	case DifficultyHard:
		return 5 + rng.Intn(2) // 5-6
	default:
		return 3 + rng.Intn(3) // 3-5
	}
}

// TaskData is one generated puzzle before rendering.
type TaskData struct {
	Specs      []ShapeSpec
	Variant    LayoutVariant
	Difficulty Difficulty
	NumShapes  int
}
