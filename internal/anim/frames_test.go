package anim_test

import (
	"math"
	"testing"

	"github.com/randomtoy/shapesorter-go/internal/anim"
	"github.com/randomtoy/shapesorter-go/internal/domain"
	"github.com/randomtoy/shapesorter-go/internal/render"
)

func testSpecs() []domain.ShapeSpec {
	shapes := []domain.Shape{domain.ShapeCircle, domain.ShapeSquare, domain.ShapeTriangle, domain.ShapeStar}
	specs := make([]domain.ShapeSpec, len(shapes))
	for i, shape := range shapes {
		specs[i] = domain.ShapeSpec{
			Shape:     shape,
			ColorName: domain.Colors[i].Name,
			ColorRGB:  domain.Colors[i].RGB,
			Start:     domain.Point{X: 30, Y: 20 + float64(i)*15},
			Target:    domain.Point{X: 90, Y: 20 + float64(i)*15},
			Size:      10,
		}
	}
	return specs
}

func TestTransitionBudget(t *testing.T) {
	cases := []struct {
		maxDuration float64
		fps, hold   int
		numCards    int
		want        int
	}{
		{10, 24, 3, 4, 58},  // (240-6)/4
		{20, 30, 3, 2, 297}, // (600-6)/2
		{1, 24, 3, 6, 10},   // floor kicks in
		{0.5, 10, 3, 2, 10}, // budget smaller than hold frames
	}
	for _, tc := range cases {
		got := anim.TransitionBudget(tc.maxDuration, tc.fps, tc.hold, tc.numCards)
		if got != tc.want {
			t.Errorf("budget(%v, %d, %d, %d): expected %d, got %d",
				tc.maxDuration, tc.fps, tc.hold, tc.numCards, tc.want, got)
		}
	}
}

func TestProgress_Boundaries(t *testing.T) {
	if p := anim.Progress(0, 10); p != 0 {
		t.Errorf("first frame: expected progress 0, got %v", p)
	}
	if p := anim.Progress(9, 10); p != 1 {
		t.Errorf("last frame: expected progress 1, got %v", p)
	}
	if p := anim.Progress(0, 1); p != 1 {
		t.Errorf("single-frame transition: expected progress 1, got %v", p)
	}
}

func TestPositionAt(t *testing.T) {
	spec := domain.ShapeSpec{
		Start:  domain.Point{X: 10, Y: 40},
		Target: domain.Point{X: 110, Y: 80},
	}

	if p := anim.PositionAt(spec, 0); p != spec.Start {
		t.Errorf("progress 0: expected start %+v, got %+v", spec.Start, p)
	}
	if p := anim.PositionAt(spec, 1); p != spec.Target {
		t.Errorf("progress 1: expected target %+v, got %+v", spec.Target, p)
	}
	mid := anim.PositionAt(spec, 0.5)
	if math.Abs(mid.X-60) > 1e-9 || math.Abs(mid.Y-60) > 1e-9 {
		t.Errorf("progress 0.5: expected (60, 60), got %+v", mid)
	}
}

func TestFrames_Count(t *testing.T) {
	r := render.New(domain.Canvas{Width: 120, Height: 80})
	specs := testSpecs()

	frames, err := anim.Frames(r, specs, 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := 2*3 + 4*10; len(frames) != want {
		t.Fatalf("expected %d frames, got %d", want, len(frames))
	}
	for i, f := range frames {
		b := f.Bounds()
		if b.Dx() != 120 || b.Dy() != 80 {
			t.Fatalf("frame %d: unexpected bounds %v", i, b)
		}
	}
}

func TestFrames_SingleTransitionFrame(t *testing.T) {
	r := render.New(domain.Canvas{Width: 120, Height: 80})
	specs := testSpecs()

	frames, err := anim.Frames(r, specs, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 2*2 + 4*1; len(frames) != want {
		t.Fatalf("expected %d frames, got %d", want, len(frames))
	}
}
