package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scadparam/scadparam/internal/scad"
)

// ErrEmptyDocument is returned when an artifact document has no content.
var ErrEmptyDocument = errors.New("empty artifact document")

// Encoding selects the document encoding.
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingJSON Encoding = "json"
)

// Write encodes a to w.
func Write(w io.Writer, a *Artifact, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(a); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case EncodingYAML, "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(a); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return encoder.Close()
	}
	return fmt.Errorf("unsupported encoding %q", enc)
}

// Read decodes an artifact document. JSON is accepted as a YAML subset.
// Loosely typed values are normalized to the Go types the extractor produces.
func Read(r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := yaml.NewDecoder(r).Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}

	for i := range a.Parameters {
		normalize(&a.Parameters[i])
	}
	return &a, nil
}

// Load reads an artifact document from path.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening artifact: %w", err)
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return a, nil
}

// Save writes a to path, choosing the encoding from enc.
func Save(path string, a *Artifact, enc Encoding) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact: %w", err)
	}

	if err := Write(f, a, enc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// normalize converts decoded values (ints, []any) to the canonical types for
// p.Type. Values that do not fit are left as decoded.
func normalize(p *scad.Parameter) {
	t := p.EffectiveType()
	if v, err := scad.Coerce(t, p.Value); err == nil && p.Value != nil {
		p.Value = v
	}
	if v, err := scad.Coerce(t, p.DefaultValue); err == nil && p.DefaultValue != nil {
		p.DefaultValue = v
	}
	if t != scad.TypeNumber {
		return
	}
	for i, opt := range p.Options {
		if v, err := scad.Coerce(scad.TypeNumber, opt.Value); err == nil {
			p.Options[i].Value = v
		}
	}
}
