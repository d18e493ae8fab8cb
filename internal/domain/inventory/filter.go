package inventory

// FilterAvailable keeps the items flagged available, preserving input order.
func FilterAvailable[T BookableItem](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.IsAvailable() {
			out = append(out, it)
		}
	}
	return out
}
