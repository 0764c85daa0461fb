// Package paramdiff compares the parameters of two OpenSCAD sources.
package paramdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/scadparam/scadparam/internal/scad"
)

// Result represents a diff between the parameters of two sources.
type Result struct {
	// Added parameters exist only in the new source.
	Added []string

	// Removed parameters exist only in the old source.
	Removed []string

	// Modified parameters exist in both with a different descriptor.
	Modified []Modified
}

// Modified is a parameter whose descriptor changed.
type Modified struct {
	// Name is the parameter name.
	Name string

	// Diff is the rendered dyff report.
	Diff string
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]Modified, 0),
	}
}

// IsEmpty returns true if there are no changes.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// ModifiedNames returns the names of modified parameters in order.
func (r *Result) ModifiedNames() []string {
	names := make([]string, len(r.Modified))
	for i, m := range r.Modified {
		names[i] = m.Name
	}
	return names
}

// Summary returns a summary string of changes.
func (r *Result) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(r.Removed)))
	}
	if len(r.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(r.Modified)))
	}

	return strings.Join(parts, ", ")
}

// Options configures Compare.
type Options struct {
	// UseColor enables the styled dyff report.
	UseColor bool
}

// Compare extracts the parameters of both sources and classifies each name.
// Added names keep the order of newSrc; removed and modified names keep the
// order of oldSrc.
func Compare(oldSrc, newSrc string, opts Options) (*Result, error) {
	return CompareParameters(scad.Extract(oldSrc), scad.Extract(newSrc), opts)
}

// CompareParameters is Compare over already extracted parameter lists.
func CompareParameters(oldParams, newParams []scad.Parameter, opts Options) (*Result, error) {
	result := NewResult()

	for _, p := range oldParams {
		next, ok := scad.Find(newParams, p.Name)
		if !ok {
			result.Removed = append(result.Removed, p.Name)
			continue
		}

		diff, err := compareParameter(p, next, opts.UseColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", p.Name, err)
		}
		if diff != "" {
			result.Modified = append(result.Modified, Modified{Name: p.Name, Diff: diff})
		}
	}

	for _, p := range newParams {
		if _, ok := scad.Find(oldParams, p.Name); !ok {
			result.Added = append(result.Added, p.Name)
		}
	}

	return result, nil
}

// descriptor is the comparable view of a parameter. The display name is
// derived from the name and the default mirrors the source literal, so both
// are left out.
type descriptor struct {
	Type        scad.Type     `json:"type"`
	Value       any           `json:"value"`
	Group       string        `json:"group"`
	Description string        `json:"description,omitempty"`
	Range       *scad.Range   `json:"range,omitempty"`
	Options     []scad.Option `json:"options,omitempty"`
}

func describe(p scad.Parameter) descriptor {
	return descriptor{
		Type:        p.Type,
		Value:       p.Value,
		Group:       p.Group,
		Description: p.Description,
		Range:       p.Range,
		Options:     p.Options,
	}
}

// compareParameter returns the rendered diff of two descriptors, or an empty
// string when they are equal.
func compareParameter(before, after scad.Parameter, useColor bool) (string, error) {
	beforeYAML, err := yaml.Marshal(describe(before))
	if err != nil {
		return "", fmt.Errorf("serializing old parameter: %w", err)
	}

	afterYAML, err := yaml.Marshal(describe(after))
	if err != nil {
		return "", fmt.Errorf("serializing new parameter: %w", err)
	}

	if bytes.Equal(beforeYAML, afterYAML) {
		return "", nil
	}

	return diffYAML(beforeYAML, afterYAML, useColor)
}

// diffYAML computes a YAML-aware diff using dyff.
func diffYAML(before, after []byte, useColor bool) (string, error) {
	beforeInput, err := parseYAMLInput("old", before)
	if err != nil {
		return "", fmt.Errorf("parsing old YAML: %w", err)
	}

	afterInput, err := parseYAMLInput("new", after)
	if err != nil {
		return "", fmt.Errorf("parsing new YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(beforeInput, afterInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderReport renders a dyff report to a string.
func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
