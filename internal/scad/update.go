package scad

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ErrUnknownParameter is reported for updates naming no extracted parameter.
var ErrUnknownParameter = errors.New("unknown parameter")

// ErrInvalidValue is reported when an update cannot be coerced to the
// parameter's type.
var ErrInvalidValue = errors.New("invalid value")

// Update is a loosely typed request to change one parameter, as it arrives
// from a values file or a `name=value` argument.
type Update struct {
	Name  string
	Value any
}

// UpdateResult describes what happened to one Update.
type UpdateResult struct {
	Name string
	// Value is the coerced value that was patched in.
	Value any
	// Err is nil when the update was applied.
	Err error
}

// Applied reports whether the update reached the source.
func (r UpdateResult) Applied() bool {
	return r.Err == nil
}

// ApplyUpdates coerces each update to the type of the matching parameter of
// source and patches it in, in order. Parameters are extracted once from the
// original source. Updates that name no parameter or carry a value of the
// wrong shape are skipped and reported; they never abort the batch.
func ApplyUpdates(source string, updates []Update) (string, []UpdateResult) {
	params := Extract(source)
	results := make([]UpdateResult, 0, len(updates))

	for _, u := range updates {
		target, ok := Find(params, u.Name)
		if !ok {
			results = append(results, UpdateResult{Name: u.Name, Err: ErrUnknownParameter})
			continue
		}

		value, err := Coerce(target.EffectiveType(), u.Value)
		if err != nil {
			results = append(results, UpdateResult{Name: u.Name, Err: err})
			continue
		}

		source = Patch(source, target.WithValue(value))
		results = append(results, UpdateResult{Name: u.Name, Value: value})
	}

	return source, results
}

// Coerce converts v to the Go representation of type t.
//
// Numbers accept numeric types and numeric strings. Booleans are true only
// for `true` (bool or its text). Strings accept any scalar. Lists accept a
// slice, or a string holding a bracketed literal or a comma separated list.
//
// A value is rejected when its OpenSCAD literal would not extract back to
// the same type and value: strings holding `;`, `"` or line breaks, list
// strings holding commas, negative or empty number lists.
func Coerce(t Type, v any) (any, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidValue, t)
	}

	var (
		value any
		err   error
	)
	switch {
	case t == TypeNumber:
		value, err = coerceNumber(v)
	case t == TypeBoolean:
		value = formatScalar(v) == "true"
	case t == TypeString:
		value = formatScalar(v)
	case t.IsArray():
		value, err = coerceList(t, v)
	}
	if err != nil {
		return nil, err
	}

	if err := checkRoundTrip(t, value); err != nil {
		return nil, err
	}
	return value, nil
}

// checkRoundTrip renders value as a literal and converts it back with the
// extractor's grammar.
func checkRoundTrip(t Type, value any) error {
	literal, ok := Literal(t, value)
	if !ok {
		return fmt.Errorf("%w: cannot render %v as %s", ErrInvalidValue, value, t)
	}
	if strings.ContainsAny(literal, ";\r\n") {
		return fmt.Errorf("%w: %s cannot contain ';' or line breaks", ErrInvalidValue, t)
	}

	back, bt, err := ConvertType(literal)
	if err != nil || bt != t || !reflect.DeepEqual(back, value) {
		return fmt.Errorf("%w: %s is not a plain %s literal", ErrInvalidValue, literal, t)
	}
	return nil
}

func coerceNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, x)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidValue, v)
}

func coerceList(t Type, v any) (any, error) {
	items, ok := listItems(v)
	if !ok {
		s, isString := v.(string)
		if !isString {
			return nil, fmt.Errorf("%w: expected a list for %s", ErrInvalidValue, t)
		}
		s = strings.TrimSpace(s)
		if parsed, pt, err := ConvertType(s); err == nil && pt == t {
			return parsed, nil
		}
		s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if t == TypeStringArray {
				part = strings.TrimSuffix(strings.TrimPrefix(part, `"`), `"`)
			}
			items = append(items, part)
		}
	}

	switch t.Elem() {
	case TypeNumber:
		out := make([]float64, len(items))
		for i, item := range items {
			f, err := coerceNumber(item)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	case TypeBoolean:
		out := make([]bool, len(items))
		for i, item := range items {
			out[i] = formatScalar(item) == "true"
		}
		return out, nil
	default:
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = formatScalar(item)
		}
		return out, nil
	}
}
