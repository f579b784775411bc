package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestFileName(t *testing.T) {
	tests := []struct {
		name     string
		rootName string
		relDir   string
		want     string
	}{
		{
			name:     "root uses the bare root name",
			rootName: "my-repo",
			relDir:   ".",
			want:     "digest-my-repo.txt",
		},
		{
			name:     "nested path segments joined with hyphens",
			rootName: "my-repo",
			relDir:   "a/b",
			want:     "digest-my-repo-a-b.txt",
		},
		{
			name:     "single child",
			rootName: "my-repo",
			relDir:   "data",
			want:     "digest-my-repo-data.txt",
		},
		{
			name:     "empty relative dir treated as root",
			rootName: "my-repo",
			relDir:   "",
			want:     "digest-my-repo.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, digestFileName(tt.rootName, tt.relDir))
		})
	}
}
