package domain_test

import (
	"math"
	"testing"

	"github.com/randomtoy/shapesorter-go/internal/domain"
)

func TestChooseLayout(t *testing.T) {
	cases := []struct {
		count int
		want  domain.LayoutVariant
	}{
		{1, domain.LayoutLine},
		{2, domain.LayoutLine},
		{3, domain.LayoutStaggered},
		{4, domain.LayoutGrid},
		{5, domain.LayoutScatter},
		{6, domain.LayoutScatter},
		{9, domain.LayoutScatter},
	}
	for _, tc := range cases {
		if got := domain.ChooseLayout(tc.count); got != tc.want {
			t.Errorf("count=%d: expected %s, got %s", tc.count, tc.want, got)
		}
	}
}

func TestLayoutColumns(t *testing.T) {
	cases := []struct {
		variant      domain.LayoutVariant
		cards, slots int
	}{
		{domain.LayoutLine, 1, 1},
		{domain.LayoutStaggered, 2, 1},
		{domain.LayoutGrid, 2, 2},
		{domain.LayoutScatter, 2, 2},
	}
	for _, tc := range cases {
		if got := tc.variant.Columns(domain.SideCards); got != tc.cards {
			t.Errorf("%s cards: expected %d columns, got %d", tc.variant, tc.cards, got)
		}
		if got := tc.variant.Columns(domain.SideSlots); got != tc.slots {
			t.Errorf("%s slots: expected %d columns, got %d", tc.variant, tc.slots, got)
		}
	}
}

func TestLayoutJitter(t *testing.T) {
	cases := []struct {
		variant      domain.LayoutVariant
		cards, slots float64
	}{
		{domain.LayoutLine, 0, 0},
		{domain.LayoutStaggered, 0.015, 0},
		{domain.LayoutGrid, 0.01, 0.01},
		{domain.LayoutScatter, 0.03, 0.015},
	}
	for _, tc := range cases {
		if got := tc.variant.Jitter(domain.SideCards); got != tc.cards {
			t.Errorf("%s cards: expected jitter %v, got %v", tc.variant, tc.cards, got)
		}
		if got := tc.variant.Jitter(domain.SideSlots); got != tc.slots {
			t.Errorf("%s slots: expected jitter %v, got %v", tc.variant, tc.slots, got)
		}
	}
}

func TestGeneratePositions_CellCenters(t *testing.T) {
	xr := domain.Range{Min: 0, Max: 100}
	yr := domain.Range{Min: 0, Max: 100}

	positions, size := domain.GeneratePositions(4, 2, xr, yr, 0, zeroRNG{})

	want := []domain.Point{{X: 25, Y: 25}, {X: 75, Y: 25}, {X: 25, Y: 75}, {X: 75, Y: 75}}
	if len(positions) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(positions))
	}
	for i, p := range positions {
		if math.Abs(p.X-want[i].X) > 1e-9 || math.Abs(p.Y-want[i].Y) > 1e-9 {
			t.Errorf("position %d: expected %+v, got %+v", i, want[i], p)
		}
	}

	// Cell is 50x50, so size is 55% of that.
	if math.Abs(size-27.5) > 1e-9 {
		t.Errorf("expected size 27.5, got %v", size)
	}
}

func TestGeneratePositions_SizeCap(t *testing.T) {
	xr := domain.Range{Min: 0, Max: 1000}
	yr := domain.Range{Min: 0, Max: 1000}

	_, size := domain.GeneratePositions(2, 1, xr, yr, 0, zeroRNG{})

	if size != domain.MaxShapeSize {
		t.Errorf("expected size capped at %v, got %v", domain.MaxShapeSize, size)
	}
}

func TestGeneratePositions_SizeFitsCells(t *testing.T) {
	rng := &lcgRNG{state: 7}
	for count := 1; count <= 8; count++ {
		for cols := 1; cols <= 2; cols++ {
			xr := domain.Range{Min: 100, Max: 380}
			yr := domain.Range{Min: 90, Max: 410}
			_, size := domain.GeneratePositions(count, cols, xr, yr, 0.02, rng)

			rows := math.Ceil(float64(count) / float64(cols))
			cellW := (xr.Max - xr.Min) / float64(cols)
			cellH := (yr.Max - yr.Min) / rows
			if size > domain.MaxShapeSize+1e-9 {
				t.Errorf("count=%d cols=%d: size %v exceeds cap", count, cols, size)
			}
			if size > 0.55*cellW+1e-9 || size > 0.55*cellH+1e-9 {
				t.Errorf("count=%d cols=%d: size %v exceeds 55%% of cell %vx%v", count, cols, size, cellW, cellH)
			}
		}
	}
}

func TestGeneratePositions_JitterBounds(t *testing.T) {
	const jitter = 0.03
	xr := domain.Range{Min: 0, Max: 100}
	yr := domain.Range{Min: 0, Max: 200}
	rng := &lcgRNG{state: 42}

	for trial := 0; trial < 50; trial++ {
		positions, _ := domain.GeneratePositions(4, 2, xr, yr, jitter, rng)
		centers := []domain.Point{{X: 25, Y: 50}, {X: 75, Y: 50}, {X: 25, Y: 150}, {X: 75, Y: 150}}
		for i, p := range positions {
			if math.Abs(p.X-centers[i].X) > jitter*100+1e-9 {
				t.Fatalf("trial %d position %d: x=%v strays beyond jitter from %v", trial, i, p.X, centers[i].X)
			}
			if math.Abs(p.Y-centers[i].Y) > jitter*200+1e-9 {
				t.Fatalf("trial %d position %d: y=%v strays beyond jitter from %v", trial, i, p.Y, centers[i].Y)
			}
		}
	}
}
