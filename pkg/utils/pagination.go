package utils

import (
	"net/url"
	"strconv"
)

// QueryInt reads a positive integer query parameter, returning def when it is
// absent, malformed or below 1.
func QueryInt(query url.Values, key string, def int) int {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil || value < 1 {
		return def
	}
	return value
}

// CalculateTotalPages is ceil(total / perPage), 0 for an empty set or a non-positive page size.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}
