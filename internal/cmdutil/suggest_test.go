package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		want       []string
	}{
		{
			name:       "transposed letters",
			input:      "widht",
			candidates: []string{"width", "rounded", "shape"},
			want:       []string{"width"},
		},
		{
			name:       "closest first",
			input:      "widht",
			candidates: []string{"height", "width"},
			want:       []string{"width", "height"},
		},
		{
			name:       "case folded subsequence",
			input:      "RND",
			candidates: []string{"rounded", "shape"},
			want:       []string{"rounded"},
		},
		{
			name:       "nothing close",
			input:      "thickness",
			candidates: []string{"width", "shape"},
			want:       []string{},
		},
		{
			name:       "capped at three",
			input:      "box",
			candidates: []string{"box4", "box2", "box3", "box1"},
			want:       []string{"box1", "box2", "box3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, tt.candidates))
		})
	}
}

func TestSuggest_EmptyInput(t *testing.T) {
	assert.Nil(t, Suggest("", []string{"width"}))
	assert.Nil(t, Suggest("width", nil))
}
