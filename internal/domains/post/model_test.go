package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 0},
		{"one word", 1, 1},
		{"under a minute", 199, 1},
		{"exactly one minute", 200, 1},
		{"just over a minute", 201, 2},
		{"five minutes", 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			assert.Equal(t, tt.want, EstimateReadTime(content))
		})
	}
}

func TestEstimateReadTimeCountsFieldsNotBytes(t *testing.T) {
	content := "one\ntwo\tthree    four"
	assert.Equal(t, 1, EstimateReadTime(content))
}
