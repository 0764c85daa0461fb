package scad

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	commentMarker = regexp.MustCompile(`^//\s*`)
	bracketEdges  = regexp.MustCompile(`^\[+|\]+$`)
	plainNumber   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	numberPrefix  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	hasDigit      = regexp.MustCompile(`[0-9]`)
)

// ParseComment interprets the trailing `//` comment of an assignment as UI
// metadata for a parameter of type t.
//
//   - `// 5`: step for numbers, maximum length (Range.Max) for strings.
//   - `// [a:A, b:B]`: options; values are parsed as floats for numbers.
//   - `// 10:50` or `// 0:5:100`: min:max or min:step:max. A single token
//     sets only Max.
//
// Anything else yields no metadata. Tokens that do not start with a number
// are ignored rather than producing NaN bounds.
func ParseComment(comment string, t Type) (*Range, []Option) {
	raw := strings.TrimSpace(commentMarker.ReplaceAllString(comment, ""))
	cleaned := bracketEdges.ReplaceAllString(raw, "")

	switch {
	case plainNumber.MatchString(raw):
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil
		}
		if t == TypeString {
			return &Range{Max: &f}, nil
		}
		return &Range{Step: &f}, nil

	case strings.HasPrefix(raw, "[") && strings.Contains(cleaned, ","):
		return nil, parseOptions(cleaned, t)

	case hasDigit.MatchString(cleaned):
		return parseRange(cleaned), nil
	}

	return nil, nil
}

func parseOptions(cleaned string, t Type) []Option {
	items := strings.Split(strings.TrimSpace(cleaned), ",")
	options := make([]Option, 0, len(items))
	for _, item := range items {
		value, label, found := strings.Cut(strings.TrimSpace(item), ":")
		value = strings.TrimSpace(value)
		label = strings.TrimSpace(label)
		if !found {
			label = value
		}

		opt := Option{Value: value, Label: label}
		if t == TypeNumber {
			if f, ok := parseFloatPrefix(value); ok {
				opt.Value = f
			}
		}
		options = append(options, opt)
	}
	return options
}

// parseRange reads up to three colon separated tokens. Min comes from the
// first token when a second or third is present, Max from the last present
// token, Step from the middle token only when all three are present.
func parseRange(cleaned string) *Range {
	parts := strings.Split(strings.TrimSpace(cleaned), ":")
	token := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	first, middle, last := token(0), token(1), token(2)

	r := &Range{}
	if first != "" && (middle != "" || last != "") {
		r.Min = floatPtr(first)
	}
	switch {
	case last != "":
		r.Max = floatPtr(last)
	case middle != "":
		r.Max = floatPtr(middle)
	case first != "":
		r.Max = floatPtr(first)
	}
	if last != "" && middle != "" {
		r.Step = floatPtr(middle)
	}

	if r.IsEmpty() {
		return nil
	}
	return r
}

func floatPtr(s string) *float64 {
	f, ok := parseFloatPrefix(s)
	if !ok {
		return nil
	}
	return &f
}

// parseFloatPrefix parses the longest leading decimal number of s, ignoring
// leading whitespace and any trailing text.
func parseFloatPrefix(s string) (float64, bool) {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// describe returns the description for an assignment given all header text
// that precedes it. The nearest line above is used; a single blank line in
// between is tolerated.
func describe(above string) string {
	above = strings.TrimSuffix(above, "\n")
	lines := strings.Split(above, "\n")

	line := lines[len(lines)-1]
	if strings.TrimSpace(line) == "" && len(lines) > 1 {
		line = lines[len(lines)-2]
	}

	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "//") {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(line, "/"))
}
