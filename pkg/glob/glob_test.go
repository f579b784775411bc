package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{
			name:    "exact match",
			pattern: "node_modules",
			input:   "node_modules",
			want:    true,
		},
		{
			name:    "exact mismatch",
			pattern: "node_modules",
			input:   "node_module",
			want:    false,
		},
		{
			name:    "star suffix",
			pattern: "*.log",
			input:   "debug.log",
			want:    true,
		},
		{
			name:    "star suffix mismatch",
			pattern: "*.log",
			input:   "debug.txt",
			want:    false,
		},
		{
			name:    "star prefix",
			pattern: "build*",
			input:   "build-output",
			want:    true,
		},
		{
			name:    "star crosses path separators",
			pattern: "*",
			input:   "a/b/c",
			want:    true,
		},
		{
			name:    "question mark matches one character",
			pattern: "a?c",
			input:   "abc",
			want:    true,
		},
		{
			name:    "question mark needs a character",
			pattern: "a?c",
			input:   "ac",
			want:    false,
		},
		{
			name:    "dot is literal",
			pattern: "a.c",
			input:   "abc",
			want:    false,
		},
		{
			name:    "directory-style pattern against name with separator",
			pattern: "dist/",
			input:   "dist/",
			want:    true,
		},
		{
			name:    "directory-style pattern against bare name",
			pattern: "dist/",
			input:   "dist",
			want:    false,
		},
		{
			name:    "pattern must match in full",
			pattern: "mod",
			input:   "node_modules",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchName(tt.pattern, tt.input))
		})
	}
}
