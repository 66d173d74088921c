package domain

// SampleShapes draws count shapes, without replacement while the vocabulary
// lasts. Counts beyond the vocabulary get a full random permutation followed
// by draws with replacement.
func SampleShapes(count int, rng RNG) []Shape {
	perm := shuffled(Shapes, rng)
	if count <= len(perm) {
		return perm[:count]
	}
	for len(perm) < count {
		perm = append(perm, Shapes[rng.Intn(len(Shapes))])
	}
	return perm
}

// SampleColors draws count palette colors, without replacement while the
// palette lasts, then with replacement.
func SampleColors(count int, rng RNG) []Color {
	perm := shuffled(Colors, rng)
	if count <= len(perm) {
		return perm[:count]
	}
	for len(perm) < count {
		perm = append(perm, Colors[rng.Intn(len(Colors))])
	}
	return perm
}

// shuffled returns a Fisher-Yates shuffled copy of items.
func shuffled[T any](items []T, rng RNG) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
