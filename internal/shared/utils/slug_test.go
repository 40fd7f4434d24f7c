package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Technology", "technology"},
		{"spaces", "Web Development", "web-development"},
		{"whitespace run", "Machine   Learning", "machine-learning"},
		{"leading trailing", "  Cloud Computing  ", "cloud-computing"},
		{"tabs and newlines", "Data\tScience\nBasics", "data-science-basics"},
		{"already lowercase", "golang", "golang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}
