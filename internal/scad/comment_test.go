package scad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestParseComment_Range(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		typ     Type
		want    *Range
	}{
		{name: "step for numbers", comment: "// 5", typ: TypeNumber, want: &Range{Step: ptr(5)}},
		{name: "max for strings", comment: "// 5", typ: TypeString, want: &Range{Max: ptr(5)}},
		{name: "decimal step", comment: "//0.5", typ: TypeNumber, want: &Range{Step: ptr(0.5)}},
		{name: "min max", comment: "// 10:50", typ: TypeNumber, want: &Range{Min: ptr(10), Max: ptr(50)}},
		{name: "min step max", comment: "// 0:5:100", typ: TypeNumber, want: &Range{Min: ptr(0), Step: ptr(5), Max: ptr(100)}},
		{name: "bracketed min max", comment: "// [0:100]", typ: TypeNumber, want: &Range{Min: ptr(0), Max: ptr(100)}},
		{name: "single bracketed bound", comment: "// [10]", typ: TypeNumber, want: &Range{Max: ptr(10)}},
		{name: "negative bounds", comment: "// -10:10", typ: TypeNumber, want: &Range{Min: ptr(-10), Max: ptr(10)}},
		{name: "open min", comment: "// :20", typ: TypeNumber, want: &Range{Max: ptr(20)}},
		{name: "junk token ignored", comment: "// abc:20", typ: TypeNumber, want: &Range{Max: ptr(20)}},
		{name: "trailing words", comment: "// 1:10 mm", typ: TypeNumber, want: &Range{Min: ptr(1), Max: ptr(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, options := ParseComment(tt.comment, tt.typ)
			assert.Nil(t, options)
			require.NotNil(t, r)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestParseComment_Options(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		typ     Type
		want    []Option
	}{
		{
			name:    "labelled strings",
			comment: "// [box:Box, cyl:Cylinder]",
			typ:     TypeString,
			want:    []Option{{Value: "box", Label: "Box"}, {Value: "cyl", Label: "Cylinder"}},
		},
		{
			name:    "labelled numbers",
			comment: "// [1:Small, 2.5:Large]",
			typ:     TypeNumber,
			want:    []Option{{Value: 1.0, Label: "Small"}, {Value: 2.5, Label: "Large"}},
		},
		{
			name:    "values without labels",
			comment: "// [red, green]",
			typ:     TypeString,
			want:    []Option{{Value: "red", Label: "red"}, {Value: "green", Label: "green"}},
		},
		{
			name:    "non numeric value on number stays text",
			comment: "// [a:A, 2:B]",
			typ:     TypeNumber,
			want:    []Option{{Value: "a", Label: "A"}, {Value: 2.0, Label: "B"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, options := ParseComment(tt.comment, tt.typ)
			assert.Nil(t, r)
			assert.Equal(t, tt.want, options)
		})
	}
}

func TestParseComment_NoMetadata(t *testing.T) {
	for _, comment := range []string{"//", "// just words", "// [a]", "//   "} {
		t.Run(comment, func(t *testing.T) {
			r, options := ParseComment(comment, TypeNumber)
			assert.Nil(t, r)
			assert.Nil(t, options)
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		above string
		want  string
	}{
		{name: "empty", above: "", want: ""},
		{name: "comment", above: "// hello\n", want: "hello"},
		{name: "blank between", above: "// hello\n\n", want: "hello"},
		{name: "whitespace line between", above: "// hello\n   \n", want: "hello"},
		{name: "two blanks", above: "// hello\n\n\n", want: ""},
		{name: "block comment", above: "/* hello */\n", want: ""},
		{name: "empty comment", above: "//\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.above))
		})
	}
}
