package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randomtoy/shapesorter-go/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "shapesortd",
		Short: "Shape sorter puzzle generator for vision-language datasets",
		Long: `shapesortd procedurally generates labeled shape sorter puzzles: colored
shape cards on the left of the board that must be matched to outline slots
on the right. Each task is a (first image, final image, prompt) triple with
an optional ground-truth animation video.`,
	}

	root.AddCommand(cli.ServeCmd())
	root.AddCommand(cli.GenerateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
