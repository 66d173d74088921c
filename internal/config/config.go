package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/randomtoy/shapesorter-go/internal/domain"
)

type Config struct {
	HTTPAddr         string
	LogLevel         slog.Level
	CanvasWidth      int
	CanvasHeight     int
	Domain           string
	Difficulty       domain.Difficulty
	GenerateVideos   bool
	VideoFPS         int
	MaxVideoDuration float64 // seconds
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		Domain:   envOr("DOMAIN", "shape_sorter"),
	}

	var err error
	if c.CanvasWidth, err = envInt("CANVAS_WIDTH", 768); err != nil {
		return Config{}, err
	}
	if c.CanvasHeight, err = envInt("CANVAS_HEIGHT", 512); err != nil {
		return Config{}, err
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return Config{}, fmt.Errorf("%w: %dx%d", domain.ErrInvalidCanvas, c.CanvasWidth, c.CanvasHeight)
	}

	difficulty, err := domain.ParseDifficulty(os.Getenv("DIFFICULTY"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DIFFICULTY %q: %w", os.Getenv("DIFFICULTY"), err)
	}
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}
	c.Difficulty = difficulty

	if c.VideoFPS, err = envInt("VIDEO_FPS", 24); err != nil {
		return Config{}, err
	}
	if c.VideoFPS <= 0 {
		return Config{}, fmt.Errorf("VIDEO_FPS must be positive, got %d", c.VideoFPS)
	}

	if v := envOr("MAX_VIDEO_DURATION", "10"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_VIDEO_DURATION %q", v)
		}
		c.MaxVideoDuration = d
	}

	if v := os.Getenv("GENERATE_VIDEOS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GENERATE_VIDEOS %q: %w", v, err)
		}
		c.GenerateVideos = b
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// Canvas returns the configured canvas size.
func (c Config) Canvas() domain.Canvas {
	return domain.Canvas{Width: c.CanvasWidth, Height: c.CanvasHeight}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
