// Package ffmpeg encodes frame sequences by driving the ffmpeg binary over
// a rawvideo stdin pipe.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

var ErrUnavailable = errors.New("ffmpeg binary not found")

// Encoder shells out to ffmpeg. The binary is located once at construction;
// a missing binary leaves the encoder permanently unavailable instead of
// failing per call.
type Encoder struct {
	fps    int
	bin    string
	logger *slog.Logger
}

func NewEncoder(fps int, logger *slog.Logger) *Encoder {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		logger.Warn("ffmpeg not found, video generation disabled", "error", err)
		bin = ""
	}
	return &Encoder{fps: fps, bin: bin, logger: logger}
}

func (e *Encoder) Available() bool { return e.bin != "" }

// Encode streams frames to ffmpeg as packed RGBA and writes an H.264 MP4 to
// outPath. All frames must share the dimensions of the first.
func (e *Encoder) Encode(ctx context.Context, frames []image.Image, outPath string) (string, error) {
	if !e.Available() {
		return "", ErrUnavailable
	}
	if len(frames) == 0 {
		return "", errors.New("no frames to encode")
	}

	bounds := frames[0].Bounds()
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"-r", strconv.Itoa(e.fps),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outPath,
	}

	cmd := exec.CommandContext(ctx, e.bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", fmt.Errorf("ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start ffmpeg: %w", err)
	}

	writeErr := func() error {
		defer stdin.Close()
		for _, frame := range frames {
			if _, err := stdin.Write(rawRGBA(frame)); err != nil {
				return err
			}
		}
		return nil
	}()

	if err := cmd.Wait(); err != nil {
		return "", fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	if writeErr != nil {
		return "", fmt.Errorf("write frames: %w", writeErr)
	}

	e.logger.Debug("encoded video", "path", outPath, "frames", len(frames), "fps", e.fps)
	return outPath, nil
}

// rawRGBA returns the frame's pixels as tightly packed RGBA bytes.
func rawRGBA(img image.Image) []byte {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba.Pix
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
