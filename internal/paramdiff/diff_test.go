package paramdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scadparam/scadparam/internal/scad"
)

func TestCompare(t *testing.T) {
	oldSrc := "width = 10;\nheight = 5; // 1:10\nlegacy = true;\n"
	newSrc := "width = 20;\nheight = 5; // 1:10\n/* [New] */\ncolor = \"red\";\n"

	result, err := Compare(oldSrc, newSrc, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"color"}, result.Added)
	assert.Equal(t, []string{"legacy"}, result.Removed)
	require.Len(t, result.Modified, 1)
	assert.Equal(t, "width", result.Modified[0].Name)
	assert.NotEmpty(t, result.Modified[0].Diff)
	assert.Equal(t, []string{"width"}, result.ModifiedNames())
	assert.Equal(t, "1 added, 1 removed, 1 modified", result.Summary())
}

func TestCompare_NoChanges(t *testing.T) {
	src := "width = 10; // 5\nlabel = \"a\";\n"

	result, err := Compare(src, src, Options{})
	require.NoError(t, err)

	assert.True(t, result.IsEmpty())
	assert.Equal(t, "No changes", result.Summary())
}

func TestCompare_EquivalentLiteralIsUnchanged(t *testing.T) {
	result, err := Compare("x = 5;\n", "x = 5.0;\n", Options{})
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestCompare_MetadataChange(t *testing.T) {
	result, err := Compare("x = 5; // 1:10\n", "// Now described\nx = 5; // 1:20\n", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, result.ModifiedNames())
}

func TestCompareParameters_GroupMove(t *testing.T) {
	before := []scad.Parameter{{Name: "x", Type: scad.TypeNumber, Value: 1.0}}
	after := []scad.Parameter{{Name: "x", Type: scad.TypeNumber, Value: 1.0, Group: "Moved"}}

	result, err := CompareParameters(before, after, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, result.ModifiedNames())
}

func TestSummary(t *testing.T) {
	r := NewResult()
	r.Added = []string{"a", "b"}
	assert.Equal(t, "2 added", r.Summary())

	r.Modified = []Modified{{Name: "c"}}
	assert.Equal(t, "2 added, 1 modified", r.Summary())
}
