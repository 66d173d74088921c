package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/randomtoy/shapesorter-go/internal/domain"
)

const geomEps = 1e-9

func dist(a, b domain.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestVertices_Triangle(t *testing.T) {
	c := domain.Point{X: 10, Y: 20}
	pts, err := domain.Vertices(domain.ShapeTriangle, c, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Point{{X: 10, Y: 16}, {X: 6, Y: 24}, {X: 14, Y: 24}}
	if len(pts) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(pts))
	}
	for i := range want {
		if dist(pts[i], want[i]) > geomEps {
			t.Errorf("vertex %d: expected %+v, got %+v", i, want[i], pts[i])
		}
	}
}

func TestVertices_Diamond(t *testing.T) {
	c := domain.Point{X: 0, Y: 0}
	pts, err := domain.Vertices(domain.ShapeDiamond, c, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Point{{X: 0, Y: -5}, {X: 5, Y: 0}, {X: 0, Y: 5}, {X: -5, Y: 0}}
	for i := range want {
		if dist(pts[i], want[i]) > geomEps {
			t.Errorf("vertex %d: expected %+v, got %+v", i, want[i], pts[i])
		}
	}
}

func TestVertices_Hexagon(t *testing.T) {
	c := domain.Point{X: 50, Y: 50}
	pts, err := domain.Vertices(domain.ShapeHexagon, c, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 6 {
		t.Fatalf("expected 6 vertices, got %d", len(pts))
	}

	// All vertices lie on the circumcircle, first one at a 30 degree offset.
	for i, p := range pts {
		if r := dist(p, c); math.Abs(r-20) > geomEps {
			t.Errorf("vertex %d: circumradius %v, expected 20", i, r)
		}
	}
	first := domain.Point{X: 50 + 20*math.Cos(math.Pi/6), Y: 50 + 20*math.Sin(math.Pi/6)}
	if dist(pts[0], first) > geomEps {
		t.Errorf("first vertex: expected %+v, got %+v", first, pts[0])
	}
}

func TestVertices_StarAlternatesRadii(t *testing.T) {
	c := domain.Point{X: 0, Y: 0}
	pts, err := domain.Vertices(domain.ShapeStar, c, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 10 {
		t.Fatalf("expected 10 vertices, got %d", len(pts))
	}

	for i, p := range pts {
		want := 50.0
		if i%2 == 1 {
			want = 50.0 * 0.45
		}
		if r := dist(p, c); math.Abs(r-want) > geomEps {
			t.Errorf("vertex %d: radius %v, expected %v", i, r, want)
		}
	}
}

func TestVertices_BoundingBoxShapes(t *testing.T) {
	for _, shape := range []domain.Shape{domain.ShapeCircle, domain.ShapeSquare} {
		pts, err := domain.Vertices(shape, domain.Point{}, 10)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", shape, err)
		}
		if pts != nil {
			t.Errorf("%s: expected no vertex list, got %v", shape, pts)
		}
	}
}

func TestVertices_UnknownShape(t *testing.T) {
	_, err := domain.Vertices(domain.Shape("blob"), domain.Point{}, 10)
	if !errors.Is(err, domain.ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
}
