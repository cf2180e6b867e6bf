package usecase

// completeOrder checks a requested order against the ids that currently exist and
// returns the full order to persist: the requested ids first, then any existing id the
// request did not mention, in its current place. Requests built from a stale list (an
// item added while the admin was arranging) therefore never drop an item.
func completeOrder(current, requested []string) ([]string, error) {
	known := make(map[string]bool, len(current))
	for _, id := range current {
		known[id] = false
	}

	out := make([]string, 0, len(current))
	for _, id := range requested {
		used, ok := known[id]
		if !ok {
			return nil, ErrUnknownID
		}
		if used {
			return nil, ErrDuplicateID
		}
		known[id] = true
		out = append(out, id)
	}
	for _, id := range current {
		if !known[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// keepKnown filters requested down to ids present in current, preserving its order.
func keepKnown(current, requested []string) []string {
	known := make(map[string]struct{}, len(current))
	for _, id := range current {
		known[id] = struct{}{}
	}
	out := make([]string, 0, len(requested))
	for _, id := range requested {
		if _, ok := known[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
