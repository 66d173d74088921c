// Package dataset persists generated task pairs as a dataset directory:
// one PNG pair (and optional MP4) per task plus a manifest.jsonl index.
package dataset

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/randomtoy/shapesorter-go/internal/app"
)

// ManifestEntry is one line of manifest.jsonl. Image and video fields hold
// paths relative to the dataset directory.
type ManifestEntry struct {
	TaskID           string   `json:"task_id"`
	Domain           string   `json:"domain"`
	Difficulty       string   `json:"difficulty"`
	LayoutVariant    string   `json:"layout_variant"`
	NumShapes        int      `json:"num_shapes"`
	Cards            []string `json:"cards"`
	Prompt           string   `json:"prompt"`
	FirstImage       string   `json:"first_image"`
	FinalImage       string   `json:"final_image"`
	GroundTruthVideo string   `json:"ground_truth_video,omitempty"`
}

// Writer appends task pairs to a dataset directory.
type Writer struct {
	dir      string
	manifest *os.File
	enc      *json.Encoder
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dataset dir: %w", err)
	}
	manifest, err := os.Create(filepath.Join(dir, "manifest.jsonl"))
	if err != nil {
		return nil, fmt.Errorf("create manifest: %w", err)
	}
	return &Writer{dir: dir, manifest: manifest, enc: json.NewEncoder(manifest)}, nil
}

// Write stores the pair's images (and moves its video, if any) into the
// dataset directory and appends a manifest line.
func (w *Writer) Write(pair app.TaskPair) (ManifestEntry, error) {
	entry := ManifestEntry{
		TaskID:        pair.TaskID,
		Domain:        pair.Domain,
		Difficulty:    string(pair.Difficulty),
		LayoutVariant: string(pair.Variant),
		NumShapes:     pair.NumShapes,
		Cards:         pair.Labels,
		Prompt:        pair.Prompt,
		FirstImage:    pair.TaskID + "_first.png",
		FinalImage:    pair.TaskID + "_final.png",
	}

	if err := w.writePNG(entry.FirstImage, pair.FirstImage); err != nil {
		return ManifestEntry{}, err
	}
	if err := w.writePNG(entry.FinalImage, pair.FinalImage); err != nil {
		return ManifestEntry{}, err
	}

	if pair.VideoPath != "" {
		name := pair.TaskID + "_ground_truth.mp4"
		if err := moveFile(pair.VideoPath, filepath.Join(w.dir, name)); err != nil {
			return ManifestEntry{}, fmt.Errorf("move video: %w", err)
		}
		entry.GroundTruthVideo = name
	}

	if err := w.enc.Encode(entry); err != nil {
		return ManifestEntry{}, fmt.Errorf("append manifest: %w", err)
	}
	return entry, nil
}

func (w *Writer) Close() error {
	return w.manifest.Close()
}

func (w *Writer) writePNG(name string, img image.Image) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}

// moveFile renames when possible and falls back to copy+remove for
// cross-device moves out of the temp staging dir.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
