// Package version provides version information for the scadparam CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// cueModulePath is the module whose version is reported as the CUE SDK.
const cueModulePath = "cuelang.org/go"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK version used for config validation.
	CUESDKVersion string `json:"cueSDKVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: dependencyVersion(cueModulePath),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("scadparam version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s\n  CUE SDK:   %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.CUESDKVersion)
}

// dependencyVersion reads the version of module path from the embedded build
// info. Test binaries and builds without module info report "unknown".
func dependencyVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
