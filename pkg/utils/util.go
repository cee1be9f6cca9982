package utils

// ClampLimit returns def when limit is not positive and max when it exceeds max.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// NonNil returns an empty slice instead of nil so JSON columns hold [] rather than null.
func NonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
