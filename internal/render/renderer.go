// Package render rasterizes puzzle states onto a fixed-size canvas.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/randomtoy/shapesorter-go/internal/domain"
)

// Board colors (tailwind slate family).
var (
	backgroundColor = color.RGBA{248, 250, 252, 255} // #f8fafc
	dividerColor    = color.RGBA{148, 163, 184, 255} // #94a3b8
	outlineColor    = color.RGBA{100, 116, 139, 255} // #64748b
)

const (
	dividerWidth  = 8.0
	dividerMargin = 40.0

	// Stroke widths: slots are outlined a touch heavier than the default.
	outlineStroke = 3.0
	defaultStroke = 2.5

	// The divider is blended toward the background for a washed-out look.
	dividerBlend = 0.35
)

// Renderer draws start, end and animation frames for one canvas size.
type Renderer struct {
	canvas domain.Canvas
}

func New(canvas domain.Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Canvas returns the configured canvas size.
func (r *Renderer) Canvas() domain.Canvas { return r.canvas }

// RenderStart draws the unsolved board: every slot outline on the right,
// then every card at its start position. Outlines go first so cards sit on
// top where they intersect.
func (r *Renderer) RenderStart(specs []domain.ShapeSpec) (image.Image, error) {
	dc := r.newContext()
	for _, s := range specs {
		if err := drawShape(dc, s.Shape, s.Target, s.Size, outlineColor, false, outlineStroke); err != nil {
			return nil, fmt.Errorf("draw outline: %w", err)
		}
	}
	for _, s := range specs {
		if err := drawShape(dc, s.Shape, s.Start, s.Size, cardColor(s), true, defaultStroke); err != nil {
			return nil, fmt.Errorf("draw card: %w", err)
		}
	}
	return dc.Image(), nil
}

// RenderEnd draws the solved board: every card filled at its target, no
// outlines.
func (r *Renderer) RenderEnd(specs []domain.ShapeSpec) (image.Image, error) {
	dc := r.newContext()
	for _, s := range specs {
		if err := drawShape(dc, s.Shape, s.Target, s.Size, cardColor(s), true, defaultStroke); err != nil {
			return nil, fmt.Errorf("draw card: %w", err)
		}
	}
	return dc.Image(), nil
}

// RenderFrame draws one animation frame. Cards before movingIdx sit at
// their targets, the moving card at pos, the rest still at start. Slot
// outlines persist on every frame.
func (r *Renderer) RenderFrame(specs []domain.ShapeSpec, movingIdx int, pos domain.Point) (image.Image, error) {
	dc := r.newContext()
	for _, s := range specs {
		if err := drawShape(dc, s.Shape, s.Target, s.Size, outlineColor, false, outlineStroke); err != nil {
			return nil, fmt.Errorf("draw outline: %w", err)
		}
	}
	for idx, s := range specs {
		p := s.Start
		switch {
		case idx < movingIdx:
			p = s.Target
		case idx == movingIdx:
			p = pos
		}
		if err := drawShape(dc, s.Shape, p, s.Size, cardColor(s), true, defaultStroke); err != nil {
			return nil, fmt.Errorf("draw card: %w", err)
		}
	}
	return dc.Image(), nil
}

// newContext prepares a blank board: background fill plus the central
// divider band.
func (r *Renderer) newContext() *gg.Context {
	dc := gg.NewContext(r.canvas.Width, r.canvas.Height)
	dc.SetColor(backgroundColor)
	dc.Clear()

	dc.SetColor(blend(backgroundColor, dividerColor, dividerBlend))
	x := float64(r.canvas.Width)/2 - dividerWidth/2
	dc.DrawRectangle(x, dividerMargin, dividerWidth, float64(r.canvas.Height)-2*dividerMargin)
	dc.Fill()

	return dc
}

func drawShape(dc *gg.Context, shape domain.Shape, center domain.Point, size float64, col color.Color, filled bool, stroke float64) error {
	switch shape {
	case domain.ShapeCircle:
		dc.DrawCircle(center.X, center.Y, size/2)
	case domain.ShapeSquare:
		dc.DrawRectangle(center.X-size/2, center.Y-size/2, size, size)
	default:
		pts, err := domain.Vertices(shape, center, size)
		if err != nil {
			return err
		}
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	}

	dc.SetColor(col)
	if filled {
		dc.Fill()
	} else {
		dc.SetLineWidth(stroke)
		dc.Stroke()
	}
	return nil
}

func cardColor(s domain.ShapeSpec) color.Color {
	return color.RGBA{s.ColorRGB.R, s.ColorRGB.G, s.ColorRGB.B, 255}
}

// blend mixes t of b into (1-t) of a, channel-wise.
func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
