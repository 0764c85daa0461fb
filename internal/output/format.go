package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/scadparam/scadparam/internal/scad"
)

// Format specifies the output format.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"

	// FormatTable outputs in table format.
	FormatTable Format = "table"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f Format) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. The boolean is false for
// unknown names, in which case FormatYAML is returned.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	case "table":
		return FormatTable, true
	default:
		return FormatYAML, false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"yaml", "json", "table"}
}

// WriteParameters writes params to w in the given format.
func WriteParameters(w io.Writer, params []scad.Parameter, format Format) error {
	if params == nil {
		params = []scad.Parameter{}
	}

	switch format {
	case FormatJSON:
		return WriteJSON(w, params)
	case FormatTable:
		_, err := fmt.Fprintln(w, ParameterTable(params))
		return err
	case FormatYAML:
		return WriteYAML(w, params)
	}
	return fmt.Errorf("format %s not supported for parameter output", format)
}

// WriteYAML writes v as YAML, using its JSON field names.
func WriteYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
