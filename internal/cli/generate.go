package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/randomtoy/shapesorter-go/internal/adapters/dataset"
	"github.com/randomtoy/shapesorter-go/internal/adapters/video/ffmpeg"
	"github.com/randomtoy/shapesorter-go/internal/app"
	"github.com/randomtoy/shapesorter-go/internal/config"
	"github.com/randomtoy/shapesorter-go/internal/domain"
	"github.com/randomtoy/shapesorter-go/internal/render"
)

// GenerateCmd writes a batch of task pairs to a dataset directory.
func GenerateCmd() *cobra.Command {
	var (
		count      int
		outDir     string
		difficulty string
		videos     bool
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset of task pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			diff, err := domain.ParseDifficulty(difficulty)
			if err != nil {
				return fmt.Errorf("--difficulty %q: %w", difficulty, err)
			}
			if diff == "" {
				diff = cfg.Difficulty
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

			var rng domain.RNG = stdRNG{}
			if seed != 0 {
				rng = newSeededRNG(seed)
			}

			encoder := ffmpeg.NewEncoder(cfg.VideoFPS, logger)
			renderer := render.New(cfg.Canvas())

			gen, err := app.NewGenerator(app.Options{
				Canvas:           cfg.Canvas(),
				Domain:           cfg.Domain,
				Difficulty:       diff,
				GenerateVideos:   videos,
				VideoFPS:         cfg.VideoFPS,
				MaxVideoDuration: cfg.MaxVideoDuration,
			}, renderer, encoder, rng, logger)
			if err != nil {
				return fmt.Errorf("init generator: %w", err)
			}

			writer, err := dataset.NewWriter(outDir)
			if err != nil {
				return err
			}
			defer writer.Close()

			withVideo := 0
			for i := 0; i < count; i++ {
				pair, err := gen.GenerateTaskPair(cmd.Context(), app.GenerateRequest{
					TaskID: uuid.NewString(),
				})
				if err != nil {
					return fmt.Errorf("task %d: %w", i+1, err)
				}
				entry, err := writer.Write(pair)
				if err != nil {
					return fmt.Errorf("task %d: %w", i+1, err)
				}
				if entry.GroundTruthVideo != "" {
					withVideo++
				}
				fmt.Printf("%s %s (%s, %d shapes, %s)\n",
					color.GreenString("✓"), entry.TaskID, entry.Difficulty, entry.NumShapes, entry.LayoutVariant)
			}

			color.New(color.Bold).Printf("wrote %d tasks to %s", count, outDir)
			if videos {
				fmt.Printf(" (%d with video)", withVideo)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of task pairs to generate")
	cmd.Flags().StringVarP(&outDir, "out", "o", "dataset", "output directory")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "easy, medium or hard (default from env)")
	cmd.Flags().BoolVar(&videos, "videos", false, "encode ground-truth videos (needs ffmpeg)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed for reproducible output (0 = random)")

	return cmd
}
