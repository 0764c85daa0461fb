package scad

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Patch replaces the value of the assignment named p.Name with p.Value,
// rendered according to p.Type. The assignment's indentation, prefix
// (`name = `) and trailing comment are kept byte-for-byte, and so is the rest
// of source. Only the first matching assignment in the header is touched.
//
// Patch is a no-op when no assignment matches, when p.Type is unknown, or
// when the value cannot be rendered as that type. It is also a no-op when the
// current literal already holds the new value, so `x = 5.0;` survives
// patching x to 5.
func Patch(source string, p Parameter) string {
	typ := p.EffectiveType()
	literal, ok := Literal(typ, p.Value)
	if !ok {
		return source
	}

	re, err := assignmentFor(p.Name)
	if err != nil {
		return source
	}

	header := Header(source)
	m, err := re.FindStringMatch(header)
	if err != nil || m == nil {
		return source
	}

	idx := newRuneIndex(header)
	_, end := idx.span(m.Index, m.Length)
	prefix := m.GroupByNumber(1)
	_, valueStart := idx.span(prefix.Index, prefix.Length)
	valueEnd := valueStart + strings.IndexByte(header[valueStart:end], ';')

	current := header[valueStart:valueEnd]
	if v, t, err := ConvertType(current); err == nil && t == typ {
		if lit, ok := Literal(t, v); ok && lit == literal {
			return source
		}
	}

	var b strings.Builder
	b.Grow(len(source) + len(literal))
	b.WriteString(source[:valueStart])
	b.WriteString(literal)
	b.WriteString(source[valueEnd:])
	return b.String()
}

// PatchAll applies Patch for each parameter in order, feeding each result
// into the next call. Parameters with an empty name are ignored.
func PatchAll(source string, params []Parameter) string {
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		source = Patch(source, p)
	}
	return source
}

// assignmentFor builds the line-anchored matcher for one parameter name. The
// name is escaped so metacharacters match literally.
func assignmentFor(name string) (*regexp2.Regexp, error) {
	pattern := `^[\t\f\v ]*(` + regexp2.Escape(name) + `\s*=\s*)[^;]+;([\t\f\v ]*\/\/[^\n]*)?`
	re, err := regexp2.Compile(pattern, regexOptions)
	if err != nil {
		return nil, fmt.Errorf("compiling matcher for %q: %w", name, err)
	}
	return re, nil
}

// Literal renders v as OpenSCAD source for type t. Strings are double quoted
// with inner quotes escaped; lists are bracketed and comma separated without
// spaces. It reports false for unknown types or values that are not lists
// when t is a list type.
func Literal(t Type, v any) (string, bool) {
	switch t {
	case TypeNumber, TypeBoolean:
		return formatScalar(v), true

	case TypeString:
		return quote(formatScalar(v)), true

	case TypeStringArray, TypeNumberArray, TypeBooleanArray:
		items, ok := listItems(v)
		if !ok {
			return "", false
		}
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = formatScalar(item)
			if t == TypeStringArray {
				parts[i] = quote(parts[i])
			}
		}
		return "[" + strings.Join(parts, ",") + "]", true
	}

	return "", false
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// formatScalar renders a scalar without quoting. Floats use the shortest
// decimal form that round-trips, never an exponent.
func formatScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// listItems flattens any slice or array into its elements.
func listItems(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case []any:
		return x, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
