package config

import (
	"embed"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	compiled := ctx.CompileBytes(schemaData, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("looking up #Config: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate checks cfg against the schema and the rules CUE cannot express.
func (v *Validator) Validate(cfg *Config) error {
	errs := v.check(v.ctx.Encode(cfg))

	seen := make(map[string]bool)
	for i, lib := range cfg.Libraries {
		if seen[lib.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("libraries.%d.name", i),
				Message: fmt.Sprintf("duplicate library %q", lib.Name),
			})
		}
		seen[lib.Name] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile validates the raw document at path, so unknown keys and
// wrongly typed values are reported, then validates the loaded Config.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(ExpandTilde(path))
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ValidationErrors{{Field: "(file)", Message: err.Error()}}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	// CUE reports a closedness error only when the rest of the document
	// unifies, so unknown keys are checked separately.
	unknown := v.unknownFields(raw)
	for _, e := range unknown {
		delete(raw, e.Field)
	}

	if errs := append(v.check(v.ctx.Encode(raw)), unknown...); len(errs) > 0 {
		return errs
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	return v.Validate(cfg)
}

// unknownFields reports top-level keys of raw that #Config does not declare,
// in sorted order.
func (v *Validator) unknownFields(raw map[string]any) ValidationErrors {
	known := make(map[string]bool)
	iter, err := v.schema.Fields(cue.Optional(true))
	if err != nil {
		return nil
	}
	for iter.Next() {
		known[strings.TrimSuffix(iter.Selector().String(), "?")] = true
	}

	var errs ValidationErrors
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if !known[key] {
			errs = append(errs, ValidationError{Field: key, Message: "field not allowed"})
		}
	}
	return errs
}

// check unifies value with the schema and converts CUE errors to
// ValidationErrors.
func (v *Validator) check(value cue.Value) ValidationErrors {
	if value.Err() != nil {
		return toValidationErrors(value.Err())
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationErrors(err)
	}
	return nil
}

func toValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	return errs
}
