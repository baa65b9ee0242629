package search

import "math"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// NormalizePage clamps page and limit to sane bounds.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset returns the offset-based pagination start row.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
