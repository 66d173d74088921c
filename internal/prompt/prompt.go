// Package prompt builds the natural-language instruction attached to each
// generated task pair.
package prompt

import (
	"fmt"
	"strings"

	"github.com/randomtoy/shapesorter-go/internal/domain"
)

// templates are the fixed instruction variants. The single %s receives the
// shape summary.
var templates = []string{
	"Move each colored shape card from the left staging area into its matching outline on the right. " +
		"Keep the camera fixed in the top-down view, move only one card at a time, and slide the cards smoothly without teleportation. " +
		"%s " +
		"Stop the video when every outline is filled exactly.",
	"Solve the flat shape sorter puzzle exactly as shown. " +
		"Starting from the unsolved first frame, drag the colored cards across the board and place them into the matching outlines on the right. " +
		"%s " +
		"Keep the board orientation unchanged and end once all outlines are packed tightly.",
}

// FormatShapeSummary phrases the ordered card labels as a matching
// instruction.
func FormatShapeSummary(labels []string) string {
	kept := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != "" {
			kept = append(kept, l)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Match the %s card to its outline.", kept[0])
	case 2:
		return fmt.Sprintf("Match the %s card first, followed by the %s card.", kept[0], kept[1])
	default:
		body := strings.Join(kept[:len(kept)-1], ", ")
		return fmt.Sprintf("Match the %s, and finally the %s card.", body, kept[len(kept)-1])
	}
}

// Build picks one template uniformly at random and fills in the summary.
func Build(labels []string, rng domain.RNG) string {
	template := templates[rng.Intn(len(templates))]
	return fmt.Sprintf(template, FormatShapeSummary(labels))
}

// All returns the raw templates.
func All() []string {
	out := make([]string, len(templates))
	copy(out, templates)
	return out
}
