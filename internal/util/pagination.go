package util

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ParseIntDefault coerces a query parameter to a positive integer,
// falling back to def when the value is absent, non-numeric or < 1.
// Listing never fails on bad paging input.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 1 {
		return v
	}
	return def
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}

func TotalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
