// Package anim sequences the ground-truth animation: cards slide from their
// start positions into the slots one at a time, with a pause at each end.
package anim

import (
	"fmt"
	"image"

	"github.com/randomtoy/shapesorter-go/internal/domain"
	"github.com/randomtoy/shapesorter-go/internal/render"
)

const (
	// DefaultHoldFrames is the static pause at the start and end of the video.
	DefaultHoldFrames = 3

	// MinTransitionFrames guarantees every card a visible slide even when the
	// duration budget is tight. The video may then run past the nominal
	// maximum; cards are never dropped to fit.
	MinTransitionFrames = 10
)

// TransitionBudget computes per-card transition frames from the duration
// budget: maxDuration seconds at fps, minus the hold frames, split evenly
// across numCards and floored at MinTransitionFrames.
func TransitionBudget(maxDuration float64, fps, holdFrames, numCards int) int {
	maxFrames := int(maxDuration * float64(fps))
	per := (maxFrames - 2*holdFrames) / numCards
	if per < MinTransitionFrames {
		per = MinTransitionFrames
	}
	return per
}

// Progress returns the interpolation progress of frame i within a
// transition, reaching exactly 1.0 on the final frame. A single-frame
// transition jumps straight to 1.0.
func Progress(i, transitionFrames int) float64 {
	if transitionFrames <= 1 {
		return 1.0
	}
	return float64(i) / float64(transitionFrames-1)
}

// PositionAt linearly interpolates a card between start and target.
func PositionAt(spec domain.ShapeSpec, progress float64) domain.Point {
	return domain.Point{
		X: spec.Start.X + (spec.Target.X-spec.Start.X)*progress,
		Y: spec.Start.Y + (spec.Target.Y-spec.Start.Y)*progress,
	}
}

// Frames renders the full sequence: holdFrames of the start state, then
// transitionFrames per card in index order, then holdFrames of the end
// state. While card i moves, cards below i rest at their targets and cards
// above i wait at their starts. Total length is
// 2*holdFrames + len(specs)*transitionFrames.
func Frames(r *render.Renderer, specs []domain.ShapeSpec, holdFrames, transitionFrames int) ([]image.Image, error) {
	frames := make([]image.Image, 0, 2*holdFrames+len(specs)*transitionFrames)

	first, err := r.RenderStart(specs)
	if err != nil {
		return nil, fmt.Errorf("render start frame: %w", err)
	}
	for range holdFrames {
		frames = append(frames, first)
	}

	for idx, spec := range specs {
		for i := range transitionFrames {
			pos := PositionAt(spec, Progress(i, transitionFrames))
			frame, err := r.RenderFrame(specs, idx, pos)
			if err != nil {
				return nil, fmt.Errorf("render transition frame: %w", err)
			}
			frames = append(frames, frame)
		}
	}

	final, err := r.RenderEnd(specs)
	if err != nil {
		return nil, fmt.Errorf("render end frame: %w", err)
	}
	for range holdFrames {
		frames = append(frames, final)
	}

	return frames, nil
}
