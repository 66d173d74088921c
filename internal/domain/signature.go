package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Signature builds a canonical dedup string for a generated puzzle.
// Coordinates are quantized to one decimal so sub-pixel jitter alone does
// not defeat deduplication, and entries are sorted so spec order is
// irrelevant.
func Signature(specs []ShapeSpec, variant LayoutVariant) string {
	entries := make([]string, len(specs))
	for i, s := range specs {
		entries[i] = strings.Join([]string{
			string(s.Shape),
			s.ColorName,
			quantize(s.Start.X),
			quantize(s.Start.Y),
			quantize(s.Target.X),
			quantize(s.Target.Y),
			quantize(s.Size),
		}, ",")
	}
	sort.Strings(entries)

	var b strings.Builder
	b.WriteString(string(variant))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(len(specs)))
	b.WriteByte('|')
	b.WriteString(strings.Join(entries, "|"))
	return b.String()
}

func quantize(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
