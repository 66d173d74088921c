package domain

// Board region fractions. Cards stage on the left, slots sit on the right,
// with the divider in the gap between them.
const (
	cardXMin  = 0.12
	cardXMax  = 0.40
	slotXMin  = 0.60
	slotXMax  = 0.88
	boardYMin = 0.18
	boardYMax = 0.82
)

// CreateSpecs builds count card/slot pairs on the given canvas. Card i maps
// to slot i; the renderer and animator rely on that index correspondence.
// All specs share one size so no shape overflows either side's packing.
func CreateSpecs(count int, canvas Canvas, rng RNG) ([]ShapeSpec, LayoutVariant) {
	variant := ChooseLayout(count)
	w := float64(canvas.Width)
	h := float64(canvas.Height)
	yRange := Range{Min: boardYMin * h, Max: boardYMax * h}

	cards, cardSize := GeneratePositions(
		count,
		variant.Columns(SideCards),
		Range{Min: cardXMin * w, Max: cardXMax * w},
		yRange,
		variant.Jitter(SideCards),
		rng,
	)
	slots, slotSize := GeneratePositions(
		count,
		variant.Columns(SideSlots),
		Range{Min: slotXMin * w, Max: slotXMax * w},
		yRange,
		variant.Jitter(SideSlots),
		rng,
	)

	size := min(cardSize, slotSize)
	shapes := SampleShapes(count, rng)
	colors := SampleColors(count, rng)

	specs := make([]ShapeSpec, count)
	for i := range count {
		specs[i] = ShapeSpec{
			Shape:     shapes[i],
			ColorName: colors[i].Name,
			ColorRGB:  colors[i].RGB,
			Start:     cards[i],
			Target:    slots[i],
			Size:      size,
		}
	}

	return specs, variant
}
