package ports

import (
	"context"
	"image"
)

// VideoEncoder writes an ordered frame sequence to a video file.
type VideoEncoder interface {
	// Available reports whether the encoding backend can be used at all.
	// Checked once by the generator; an unavailable backend disables video
	// generation for the generator's lifetime.
	Available() bool

	// Encode blocks until the frames are written to outPath and returns the
	// final path. Failure is recoverable: callers drop the video rather than
	// failing the task.
	Encode(ctx context.Context, frames []image.Image, outPath string) (string, error)
}
