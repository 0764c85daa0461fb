// Package scad extracts tunable parameters from OpenSCAD source and rewrites
// their assignments in place.
//
// Parameters live in the header of a file: every line before the first
// `module ` or `function ` definition. Each top-level `name = literal;`
// assignment in the header becomes a Parameter. UI metadata is carried by
// comment conventions:
//
//	/* [Group Name] */          starts a named group
//	// Free text                 description of the next assignment
//	width = 20; // 10:50         range (min:max or min:step:max)
//	label = "abc"; // 8          maximum length for strings, step otherwise
//	shape = "box"; // [box:Box, cyl:Cylinder]  options
//
// Everything in this package is a pure function of its input text.
package scad

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type is the inferred type of a parameter value.
type Type string

const (
	TypeString       Type = "string"
	TypeNumber       Type = "number"
	TypeBoolean      Type = "boolean"
	TypeStringArray  Type = "string[]"
	TypeNumberArray  Type = "number[]"
	TypeBooleanArray Type = "boolean[]"
)

// IsArray reports whether t is one of the list types.
func (t Type) IsArray() bool {
	return strings.HasSuffix(string(t), "[]")
}

// Elem returns the element type of a list type, or t itself for scalars.
func (t Type) Elem() Type {
	return Type(strings.TrimSuffix(string(t), "[]"))
}

// IsValid reports whether t is a known type. The empty type is not valid but
// is accepted by Patch as a legacy number.
func (t Type) IsValid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeStringArray, TypeNumberArray, TypeBooleanArray:
		return true
	default:
		return false
	}
}

// Range carries slider bounds inferred from a trailing comment.
// Unset fields are nil.
type Range struct {
	Min  *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max  *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step *float64 `json:"step,omitempty" yaml:"step,omitempty"`
}

// IsEmpty reports whether no field is set.
func (r *Range) IsEmpty() bool {
	return r == nil || (r.Min == nil && r.Max == nil && r.Step == nil)
}

// Option is one entry of a select-style parameter.
// Value is a float64 for number parameters and a string otherwise.
type Option struct {
	Value any    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Parameter describes one tunable constant recovered from source.
//
// Value and DefaultValue hold one of float64, bool, string, []float64,
// []string or []bool, matching Type. Both are set to the parsed literal by
// the extractor; Value only diverges through WithValue.
type Parameter struct {
	Name         string   `json:"name" yaml:"name"`
	DisplayName  string   `json:"displayName" yaml:"displayName"`
	Value        any      `json:"value" yaml:"value"`
	DefaultValue any      `json:"defaultValue" yaml:"defaultValue"`
	Type         Type     `json:"type,omitempty" yaml:"type,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Group        string   `json:"group" yaml:"group"`
	Range        *Range   `json:"range,omitempty" yaml:"range,omitempty"`
	Options      []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// MaxLength is reserved. The extractor folds string length limits into
	// Range.Max instead.
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

// WithValue returns a copy of p holding v as its current value.
// DefaultValue is left untouched.
func (p Parameter) WithValue(v any) Parameter {
	p.Value = v
	return p
}

// EffectiveType returns the type used for rendering; legacy parameters
// without a type are treated as numbers.
func (p Parameter) EffectiveType() Type {
	if p.Type == "" {
		return TypeNumber
	}
	return p.Type
}

// DisplayName derives a human label from an identifier: underscores become
// spaces and every word is capitalised. `$fn` is labelled "Resolution".
func DisplayName(name string) string {
	if name == "$fn" {
		return "Resolution"
	}

	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// cloneValue copies slice values so two parameters never share a backing array.
func cloneValue(v any) any {
	switch x := v.(type) {
	case []float64:
		return append([]float64(nil), x...)
	case []string:
		return append([]string(nil), x...)
	case []bool:
		return append([]bool(nil), x...)
	default:
		return v
	}
}
