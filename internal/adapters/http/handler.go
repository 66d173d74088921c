package http

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/randomtoy/shapesorter-go/internal/app"
	"github.com/randomtoy/shapesorter-go/internal/domain"
)

type Handler struct {
	gen *app.Generator
}

func NewHandler(gen *app.Generator) *Handler {
	return &Handler{gen: gen}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/tasks", h.GenerateTask)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GenerateTask produces one fresh task pair. Query params: difficulty
// (easy|medium|hard, defaults to the configured level) and task_id
// (defaults to a random UUID).
func (h *Handler) GenerateTask(c echo.Context) error {
	difficulty, err := domain.ParseDifficulty(c.QueryParam("difficulty"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	taskID := c.QueryParam("task_id")
	if taskID == "" {
		taskID = uuid.NewString()
	}

	start := time.Now()
	pair, err := h.gen.GenerateTaskPair(c.Request().Context(), app.GenerateRequest{
		TaskID:     taskID,
		Difficulty: difficulty,
	})
	if err != nil {
		return mapError(c, err)
	}

	resp, err := toResponse(pair)
	if err != nil {
		return mapError(c, err)
	}
	resp.Meta.RequestID, _ = c.Get("request_id").(string)
	resp.Meta.LatencyMS = time.Since(start).Milliseconds()

	return c.JSON(http.StatusOK, resp)
}

func toResponse(p app.TaskPair) (TaskResponse, error) {
	first, err := encodePNG(p.FirstImage)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("encode first image: %w", err)
	}
	final, err := encodePNG(p.FinalImage)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("encode final image: %w", err)
	}
	return TaskResponse{
		TaskID:           p.TaskID,
		Domain:           p.Domain,
		Difficulty:       string(p.Difficulty),
		LayoutVariant:    string(p.Variant),
		NumShapes:        p.NumShapes,
		Cards:            p.Labels,
		Prompt:           p.Prompt,
		FirstImage:       first,
		FinalImage:       final,
		GroundTruthVideo: p.VideoPath,
	}, nil
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidDifficulty), errors.Is(err, domain.ErrInvalidCanvas):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("task generation failed", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
