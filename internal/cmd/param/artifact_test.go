package param

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scadparam/scadparam/internal/artifact"
	"github.com/scadparam/scadparam/internal/testutil"
)

func TestArtifact_FromSource(t *testing.T) {
	path := testutil.WriteSample(t, t.TempDir())

	out, err := runParam(t, nil, "", "artifact", path)
	require.NoError(t, err)

	assert.Contains(t, out, "title: box")
	assert.Contains(t, out, "version: v1")
	assert.Contains(t, out, "name: width")
	assert.NotContains(t, out, "libraries:")
}

func TestArtifact_JSONWithSet(t *testing.T) {
	captureLogs(t)
	path := testutil.WriteSample(t, t.TempDir())

	out, err := runParam(t, formatConfig("json"), "", "artifact", path, "--title", " Storage Box ", "--set", "width=40")
	require.NoError(t, err)

	var a artifact.Artifact
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "Storage Box", a.Title)
	assert.Equal(t, "v2", a.Version)
	assert.Contains(t, a.Code, "width = 40; // 10:50")
	require.Len(t, a.Parameters, 6)
	assert.Equal(t, 40.0, a.Parameters[0].Value)
}

func TestArtifact_SaveAndReload(t *testing.T) {
	captureLogs(t)
	dir := t.TempDir()
	path := testutil.WriteSample(t, dir)
	saved := filepath.Join(dir, "box.json")

	out, err := runParam(t, nil, "", "artifact", path, "--save", saved)
	require.NoError(t, err)
	assert.Empty(t, out)

	first, err := artifact.Load(saved)
	require.NoError(t, err)
	assert.Equal(t, "v1", first.Version)

	out, err = runParam(t, formatConfig("json"), "", "artifact", saved, "--set", "wall=2")
	require.NoError(t, err)

	var a artifact.Artifact
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "box", a.Title)
	assert.Equal(t, "v2", a.Version)
	assert.Contains(t, a.Code, "wall = 2;")
}

func TestArtifact_UnchangedSetKeepsVersion(t *testing.T) {
	captureLogs(t)
	path := testutil.WriteSample(t, t.TempDir())

	out, err := runParam(t, nil, "", "artifact", path, "--set", "width=20")
	require.NoError(t, err)
	assert.Contains(t, out, "version: v1")
}

func TestArtifact_Libraries(t *testing.T) {
	source := "include <BOSL2/std.scad>\nsize = 1;\n"

	out, err := runParam(t, formatConfig("json"), source, "artifact", "-")
	require.NoError(t, err)

	var a artifact.Artifact
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, artifact.DefaultTitle, a.Title)

	var names []string
	for _, lib := range a.Libraries {
		names = append(names, lib.Name)
	}
	assert.Contains(t, names, "BOSL2")
}

func TestEncodingForPath(t *testing.T) {
	tests := []struct {
		path string
		want artifact.Encoding
		ok   bool
	}{
		{path: "a.yaml", want: artifact.EncodingYAML, ok: true},
		{path: "a.YML", want: artifact.EncodingYAML, ok: true},
		{path: "dir/a.json", want: artifact.EncodingJSON, ok: true},
		{path: "a.scad", ok: false},
		{path: "-", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := encodingForPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
