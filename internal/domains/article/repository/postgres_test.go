package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "canadiens", "canadiens"},
		{"percent escaped", "100%", `100\%`},
		{"underscore escaped", "of_the", `of\_the`},
		{"backslash escaped first", `a\b`, `a\\b`},
		{"mixed", `50%_\`, `50\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
