package param

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scadparam/scadparam/internal/testutil"
)

func TestDiff_Changes(t *testing.T) {
	dir := t.TempDir()
	oldPath := testutil.WriteSample(t, dir)
	newSrc := strings.NewReplacer(
		"width = 20;", "width = 25;",
		"wall = 1.6;\n", "depth = 8;\n",
	).Replace(testutil.SampleSource)
	newPath := testutil.WriteFile(t, dir, "box_v2.scad", newSrc)

	out, err := runParam(t, nil, "", "diff", oldPath, newPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Added:")
	assert.Contains(t, out, "+ depth")
	assert.Contains(t, out, "Removed:")
	assert.Contains(t, out, "- wall")
	assert.Contains(t, out, "Modified:")
	assert.Contains(t, out, "~ width")
	assert.Contains(t, out, "Summary: 1 added, 1 removed, 1 modified")
}

func TestDiff_Identical(t *testing.T) {
	dir := t.TempDir()
	oldPath := testutil.WriteSample(t, dir)
	newPath := testutil.WriteFile(t, dir, "copy.scad", testutil.SampleSource+"\n// trailing comment\n")

	out, err := runParam(t, nil, "", "diff", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, "No changes detected.", out)
}

func TestDiff_Stdin(t *testing.T) {
	path := testutil.WriteSample(t, t.TempDir())
	old := strings.Replace(testutil.SampleSource, "rounded = true;\n", "", 1)

	out, err := runParam(t, nil, old, "diff", "-", path)
	require.NoError(t, err)
	assert.Contains(t, out, "+ rounded")
	assert.Contains(t, out, "Summary: 1 added")
}

func TestDiff_BothStdin(t *testing.T) {
	_, err := runParam(t, nil, "", "diff", "-", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}
