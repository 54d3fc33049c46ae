package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already normalized", "/api/images/books/dracula.jpg", "/api/images/books/dracula.jpg"},
		{"absolute http", "http://cdn.example.com/covers/x.jpg", "http://cdn.example.com/covers/x.jpg"},
		{"legacy path", "/images/books/war-and-peace-leo-tolstoy.jpg", "/api/images/books/war-and-peace-leo-tolstoy.jpg"},
		{"bare filename", "anna-karenina-leo-tolstoy.jpg", "/api/images/books/anna-karenina-leo-tolstoy.jpg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeImageURL(tc.in))
		})
	}
}
