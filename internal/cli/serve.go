package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpadapter "github.com/randomtoy/shapesorter-go/internal/adapters/http"
	"github.com/randomtoy/shapesorter-go/internal/adapters/video/ffmpeg"
	"github.com/randomtoy/shapesorter-go/internal/app"
	"github.com/randomtoy/shapesorter-go/internal/config"
	"github.com/randomtoy/shapesorter-go/internal/render"
)

// ServeCmd runs the task generation HTTP service.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve task pairs over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
			slog.SetDefault(logger)

			encoder := ffmpeg.NewEncoder(cfg.VideoFPS, logger)
			renderer := render.New(cfg.Canvas())

			gen, err := app.NewGenerator(app.Options{
				Canvas:           cfg.Canvas(),
				Domain:           cfg.Domain,
				Difficulty:       cfg.Difficulty,
				GenerateVideos:   cfg.GenerateVideos,
				VideoFPS:         cfg.VideoFPS,
				MaxVideoDuration: cfg.MaxVideoDuration,
			}, renderer, encoder, stdRNG{}, logger)
			if err != nil {
				return fmt.Errorf("init generator: %w", err)
			}

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true

			e.Use(httpadapter.RequestIDMiddleware())
			e.Use(httpadapter.LoggingMiddleware(logger))

			handler := httpadapter.NewHandler(gen)
			handler.Register(e)

			// Graceful shutdown.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			go func() {
				logger.Info("starting server", "addr", cfg.HTTPAddr)
				if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", "error", err)
					os.Exit(1)
				}
			}()

			<-ctx.Done()
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}
