package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff(t *testing.T) {
	styles := NoColorStyles()

	t.Run("renders no changes message", func(t *testing.T) {
		assert.Equal(t, "No changes detected.", RenderDiff(nil, nil, nil, styles))
	})

	t.Run("renders added parameters", func(t *testing.T) {
		result := RenderDiff([]string{"height"}, nil, nil, styles)

		assert.Contains(t, result, "Added:")
		assert.Contains(t, result, "+ height")
		assert.Contains(t, result, "1 added")
	})

	t.Run("renders removed parameters", func(t *testing.T) {
		result := RenderDiff(nil, []string{"depth"}, nil, styles)

		assert.Contains(t, result, "Removed:")
		assert.Contains(t, result, "- depth")
		assert.Contains(t, result, "1 removed")
	})

	t.Run("renders modified parameters with indented diff", func(t *testing.T) {
		modified := []ModifiedItem{{Name: "width", Diff: "value\n  - 20\n  + 30\n"}}
		result := RenderDiff(nil, nil, modified, styles)

		assert.Contains(t, result, "Modified:")
		assert.Contains(t, result, "~ width")
		assert.Contains(t, result, "    value\n")
		assert.Contains(t, result, "      + 30\n")
		assert.Contains(t, result, "1 modified")
	})

	t.Run("renders all change types", func(t *testing.T) {
		result := RenderDiff(
			[]string{"a", "b"},
			[]string{"c"},
			[]ModifiedItem{{Name: "d", Diff: "changed"}},
			styles,
		)
		assert.Contains(t, result, "Summary: 2 added, 1 removed, 1 modified")
	})
}

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		added, removed, modified int
		want                     string
	}{
		{0, 0, 0, "No changes"},
		{3, 0, 0, "3 added"},
		{0, 12, 1, "12 removed, 1 modified"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, diffSummary(tt.added, tt.removed, tt.modified))
		})
	}
}

func TestSourceDiff(t *testing.T) {
	styles := NoColorStyles()

	t.Run("identical sources", func(t *testing.T) {
		assert.Empty(t, SourceDiff("a = 1;\n", "a = 1;\n", styles))
	})

	t.Run("single changed line", func(t *testing.T) {
		old := "a = 1;\nb = 2;\nc = 3;\n"
		updated := "a = 1;\nb = 5;\nc = 3;\n"

		assert.Equal(t, "-   2  b = 2;\n+   2  b = 5;\n", SourceDiff(old, updated, styles))
	})

	t.Run("appended line without trailing newline", func(t *testing.T) {
		out := SourceDiff("a = 1;\n", "a = 1;\nb = 2;", styles)
		assert.Equal(t, "+   2  b = 2;\n", out)
	})
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", ""}, splitLines("a\n\n"))
}
