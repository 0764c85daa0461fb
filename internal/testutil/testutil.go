// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleSource is a small parametric model with a group, a ranged number,
// an options list, a boolean, a number list and a module body.
const SampleSource = `// Simple box
/* [Size] */
// Outer width in mm
width = 20; // 10:50
height = 10; // [5:1:40]
wall = 1.6;

/* [Style] */
shape = "box"; // [box:Box, cyl:Cylinder]
rounded = true;
holes = [3, 4, 5];

module body() {
    cube([width, width, height]);
}

body();
`

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteSample writes SampleSource to dir/box.scad and returns its path.
func WriteSample(t *testing.T, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "box.scad", SampleSource)
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Chdir changes the working directory for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Logf("warning: failed to restore working directory %s: %v", wd, err)
		}
	})
}
