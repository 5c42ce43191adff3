package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{total: 25, perPage: 10, want: 3},
		{total: 20, perPage: 10, want: 2},
		{total: 1, perPage: 10, want: 1},
		{total: 0, perPage: 10, want: 0},
		{total: 5, perPage: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.perPage), "total=%d perPage=%d", tt.total, tt.perPage)
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
}

func TestQueryInt(t *testing.T) {
	query := url.Values{"page": {"3"}, "zero": {"0"}, "junk": {"abc"}}

	assert.Equal(t, 3, QueryInt(query, "page", 1))
	assert.Equal(t, 1, QueryInt(query, "zero", 1))
	assert.Equal(t, 1, QueryInt(query, "junk", 1))
	assert.Equal(t, 10, QueryInt(query, "missing", 10))
}
