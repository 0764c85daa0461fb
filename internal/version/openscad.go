package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"
)

// openscadVersionRegex matches release versions like "2021.01" and
// snapshot versions like "2024.12.06".
var openscadVersionRegex = regexp.MustCompile(`\d{4}\.\d{2}(?:\.\d{2})?(?:\.[A-Za-z0-9]+)?`)

// probeTimeout bounds the `openscad --version` call.
const probeTimeout = 5 * time.Second

// OpenSCADInfo describes the OpenSCAD binary that define arguments are
// rendered for.
type OpenSCADInfo struct {
	// Version is the binary version, empty when unknown.
	Version string `json:"version"`

	// Path is the resolved binary path.
	Path string `json:"path"`

	// Found indicates the binary is on PATH.
	Found bool `json:"found"`

	// Message explains a failed probe.
	Message string `json:"message,omitempty"`
}

// String returns a human-readable summary.
func (o OpenSCADInfo) String() string {
	if !o.Found {
		return "  OpenSCAD:  not found"
	}
	if o.Version == "" {
		return fmt.Sprintf("  OpenSCAD:  unknown version (%s)\n  Path:      %s", o.Message, o.Path)
	}
	return fmt.Sprintf("  OpenSCAD:  %s\n  Path:      %s", o.Version, o.Path)
}

// DetectOpenSCAD looks up the openscad binary on PATH and asks it for its
// version.
func DetectOpenSCAD(ctx context.Context) OpenSCADInfo {
	path, err := exec.LookPath("openscad")
	if err != nil {
		return OpenSCADInfo{Message: "openscad binary not found in PATH"}
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	// OpenSCAD prints its version on stderr.
	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return OpenSCADInfo{Path: path, Found: true, Message: "failed to run openscad: " + err.Error()}
	}

	v, err := extractVersion(out.String())
	if err != nil {
		return OpenSCADInfo{Path: path, Found: true, Message: err.Error()}
	}
	return OpenSCADInfo{Version: v, Path: path, Found: true}
}

// extractVersion extracts the version number from `openscad --version`
// output, e.g. "OpenSCAD version 2021.01".
func extractVersion(output string) (string, error) {
	match := openscadVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return match, nil
}

// versionParseError indicates failure to parse OpenSCAD version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse OpenSCAD version from output: " + e.output
}
