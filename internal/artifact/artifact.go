// Package artifact holds a generated OpenSCAD source together with the
// parameters derived from it.
package artifact

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/scadparam/scadparam/internal/scad"
)

// DefaultTitle is used when no title is given and none can be derived.
const DefaultTitle = "Untitled Object"

// InitialVersion is the version of a freshly built artifact.
const InitialVersion = "v1"

var (
	unsafeFilenameChars = regexp.MustCompile(`[/\\?%*:|"<>]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
	trailingNumber      = regexp.MustCompile(`^(.*?)(\d+)$`)
)

// Artifact is one OpenSCAD source plus its derived parameter list.
// Parameters and Libraries are always recomputed from Code, never edited
// independently.
type Artifact struct {
	Title      string           `json:"title" yaml:"title"`
	Version    string           `json:"version" yaml:"version"`
	Code       string           `json:"code" yaml:"code"`
	Parameters []scad.Parameter `json:"parameters" yaml:"parameters"`
	Libraries  []scad.Library   `json:"libraries,omitempty" yaml:"libraries,omitempty"`
}

// New builds a first-version artifact from source. known is the list of
// libraries to look for in the code.
func New(title, code string, known []scad.Library) *Artifact {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	a := &Artifact{
		Title:   strings.TrimSpace(title),
		Version: InitialVersion,
		Code:    code,
	}
	a.refresh(known)
	return a
}

// TitleFromPath derives a title from a file name: the base name without
// extension, with underscores and dashes turned into spaces.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	if base == "." || base == "/" || base == "-" {
		return DefaultTitle
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	stem = strings.Join(strings.Fields(stem), " ")
	if stem == "" {
		return DefaultTitle
	}
	return stem
}

// Apply patches updates into the code. When the code changes the parameters
// and libraries are re-extracted and the version is bumped.
func (a *Artifact) Apply(updates []scad.Update, known []scad.Library) []scad.UpdateResult {
	code, results := scad.ApplyUpdates(a.Code, updates)
	a.replaceCode(code, known)
	return results
}

// SetParameters patches the values of params into the code, the way an
// editor commits a whole parameter panel at once.
func (a *Artifact) SetParameters(params []scad.Parameter, known []scad.Library) {
	a.replaceCode(scad.PatchAll(a.Code, params), known)
}

func (a *Artifact) replaceCode(code string, known []scad.Library) {
	if code == a.Code {
		return
	}
	a.Code = code
	a.Version = BumpVersion(a.Version)
	a.refresh(known)
}

func (a *Artifact) refresh(known []scad.Library) {
	a.Parameters = scad.Extract(a.Code)
	a.Libraries = scad.DetectLibraries(a.Code, known)
}

// Filename returns a file name for the code that is safe on common file
// systems.
func (a *Artifact) Filename() string {
	return SafeFilename(a.Title, "model") + ".scad"
}

// SafeFilename replaces characters that are not allowed in file names with a
// dash and whitespace runs with an underscore. Blank names use fallback.
func SafeFilename(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	return whitespaceRun.ReplaceAllString(name, "_")
}

// BumpVersion increments the trailing number of v: v1 becomes v2 and 1.9
// becomes 1.10. An empty version becomes v1; a version without a trailing
// number gets "-2" appended.
func BumpVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return InitialVersion
	}

	m := trailingNumber.FindStringSubmatch(v)
	if m == nil {
		return v + "-2"
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return v + "-2"
	}
	return fmt.Sprintf("%s%d", m[1], n+1)
}
