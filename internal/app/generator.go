package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/randomtoy/shapesorter-go/internal/anim"
	"github.com/randomtoy/shapesorter-go/internal/domain"
	"github.com/randomtoy/shapesorter-go/internal/ports"
	"github.com/randomtoy/shapesorter-go/internal/prompt"
	"github.com/randomtoy/shapesorter-go/internal/render"
)

// maxUniqueAttempts bounds the retry-until-unseen loop. After that many
// signature collisions one more generation is accepted as-is, without
// recording it: occasional duplicates beat unbounded retries.
const maxUniqueAttempts = 25

// GenerateRequest is the application-level input.
type GenerateRequest struct {
	TaskID     string
	Difficulty domain.Difficulty // empty means the configured default
}

// TaskPair is one generated task handed to the dataset pipeline.
type TaskPair struct {
	TaskID     string
	Domain     string
	Difficulty domain.Difficulty
	Variant    domain.LayoutVariant
	NumShapes  int
	Labels     []string
	Prompt     string
	FirstImage image.Image
	FinalImage image.Image
	VideoPath  string // empty when video generation is off or encoding failed
}

// Options configure a Generator.
type Options struct {
	Canvas           domain.Canvas
	Domain           string
	Difficulty       domain.Difficulty
	GenerateVideos   bool
	VideoFPS         int
	MaxVideoDuration float64 // seconds
}

// Generator produces shape sorter task pairs. Not safe for concurrent use;
// the signature set and RNG are unsynchronized, give each worker its own
// instance.
type Generator struct {
	opts     Options
	renderer *render.Renderer
	encoder  ports.VideoEncoder
	rng      domain.RNG
	logger   *slog.Logger
	videos   bool
	seen     map[string]struct{}
}

func NewGenerator(opts Options, renderer *render.Renderer, encoder ports.VideoEncoder, rng domain.RNG, logger *slog.Logger) (*Generator, error) {
	if opts.Canvas.Width <= 0 || opts.Canvas.Height <= 0 {
		return nil, domain.ErrInvalidCanvas
	}
	if opts.Difficulty == "" {
		opts.Difficulty = domain.DifficultyMedium
	}

	videos := opts.GenerateVideos && encoder != nil && encoder.Available()
	if opts.GenerateVideos && !videos {
		logger.Warn("video backend unavailable, videos disabled", "domain", opts.Domain)
	}

	return &Generator{
		opts:     opts,
		renderer: renderer,
		encoder:  encoder,
		rng:      rng,
		logger:   logger,
		videos:   videos,
		seen:     make(map[string]struct{}),
	}, nil
}

// GenerateTaskPair produces one task: both static renders, the instruction
// prompt, and (when enabled and the encoder succeeds) a ground-truth video.
func (g *Generator) GenerateTaskPair(ctx context.Context, req GenerateRequest) (TaskPair, error) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = g.opts.Difficulty
	}

	data := g.generateTaskData(difficulty)

	first, err := g.renderer.RenderStart(data.Specs)
	if err != nil {
		return TaskPair{}, fmt.Errorf("render start: %w", err)
	}
	final, err := g.renderer.RenderEnd(data.Specs)
	if err != nil {
		return TaskPair{}, fmt.Errorf("render end: %w", err)
	}

	videoPath := ""
	if g.videos {
		path, err := g.generateVideo(ctx, req.TaskID, data.Specs)
		if err != nil {
			// Recoverable: the pair ships without a video.
			g.logger.Warn("video generation failed", "task_id", req.TaskID, "error", err)
		} else {
			videoPath = path
		}
	}

	labels := make([]string, len(data.Specs))
	for i, s := range data.Specs {
		labels[i] = s.Label()
	}

	return TaskPair{
		TaskID:     req.TaskID,
		Domain:     g.opts.Domain,
		Difficulty: data.Difficulty,
		Variant:    data.Variant,
		NumShapes:  data.NumShapes,
		Labels:     labels,
		Prompt:     prompt.Build(labels, g.rng),
		FirstImage: first,
		FinalImage: final,
		VideoPath:  videoPath,
	}, nil
}

// generateTaskData retries generation until the signature is unseen, up to
// maxUniqueAttempts, then falls back to one final unrecorded generation.
func (g *Generator) generateTaskData(difficulty domain.Difficulty) domain.TaskData {
	count := difficulty.ShapeCount(g.rng)

	for range maxUniqueAttempts {
		specs, variant := domain.CreateSpecs(count, g.opts.Canvas, g.rng)
		sig := domain.Signature(specs, variant)
		if _, dup := g.seen[sig]; dup {
			continue
		}
		g.seen[sig] = struct{}{}
		return domain.TaskData{Specs: specs, Variant: variant, Difficulty: difficulty, NumShapes: count}
	}

	g.logger.Debug("dedup exhausted, accepting duplicate", "count", count)
	specs, variant := domain.CreateSpecs(count, g.opts.Canvas, g.rng)
	return domain.TaskData{Specs: specs, Variant: variant, Difficulty: difficulty, NumShapes: count}
}

func (g *Generator) generateVideo(ctx context.Context, taskID string, specs []domain.ShapeSpec) (string, error) {
	dir := filepath.Join(os.TempDir(), g.opts.Domain+"_videos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}
	outPath := filepath.Join(dir, taskID+"_ground_truth.mp4")

	transition := anim.TransitionBudget(g.opts.MaxVideoDuration, g.opts.VideoFPS, anim.DefaultHoldFrames, len(specs))
	frames, err := anim.Frames(g.renderer, specs, anim.DefaultHoldFrames, transition)
	if err != nil {
		return "", fmt.Errorf("build frames: %w", err)
	}

	return g.encoder.Encode(ctx, frames, outPath)
}
