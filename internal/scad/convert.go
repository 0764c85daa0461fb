package scad

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedValue is returned for right-hand sides that are not a
	// plain literal: expressions, references, function calls.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrInvalidArray is returned for list literals that are empty or whose
	// elements are not all numbers, all booleans or all quoted strings.
	ErrInvalidArray = errors.New("invalid array value")
)

var (
	numberLiteral   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	unsignedLiteral = regexp.MustCompile(`^\d+(\.\d+)?$`)
	quotedLiteral   = regexp.MustCompile(`^".*"$`)
)

// ConvertType infers the type and value of the raw right-hand side of an
// assignment. The grammar is deliberately narrow: anything that is not a
// number, boolean, double-quoted string or flat homogeneous list is rejected.
//
// Numbers are signed decimals without exponent. List elements are trimmed and
// must be unsigned numbers, `true`/`false`, or double-quoted strings.
func ConvertType(raw string) (any, Type, error) {
	switch {
	case numberLiteral.MatchString(raw):
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedValue, raw)
		}
		return f, TypeNumber, nil

	case raw == "true" || raw == "false":
		return raw == "true", TypeBoolean, nil

	case quotedLiteral.MatchString(raw):
		return raw[1 : len(raw)-1], TypeString, nil

	case strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") && len(raw) >= 2:
		return convertArray(raw)
	}

	return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedValue, raw)
}

func convertArray(raw string) (any, Type, error) {
	items := strings.Split(raw[1:len(raw)-1], ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	switch {
	case all(items, unsignedLiteral.MatchString):
		nums := make([]float64, len(items))
		for i, item := range items {
			f, err := strconv.ParseFloat(item, 64)
			if err != nil {
				return nil, "", fmt.Errorf("%w: %s", ErrInvalidArray, raw)
			}
			nums[i] = f
		}
		return nums, TypeNumberArray, nil

	case all(items, quotedLiteral.MatchString):
		strs := make([]string, len(items))
		for i, item := range items {
			strs[i] = item[1 : len(item)-1]
		}
		return strs, TypeStringArray, nil

	case all(items, isBoolLiteral):
		bools := make([]bool, len(items))
		for i, item := range items {
			bools[i] = item == "true"
		}
		return bools, TypeBooleanArray, nil
	}

	return nil, "", fmt.Errorf("%w: %s: elements must be all numbers, all booleans, or all quoted strings and not empty",
		ErrInvalidArray, raw)
}

func isBoolLiteral(s string) bool {
	return s == "true" || s == "false"
}

// all reports whether every item satisfies pred. An empty list never does.
func all(items []string, pred func(string) bool) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// isReference reports whether a raw value is not a constant: it starts like
// an identifier or spans several lines.
func isReference(raw string) bool {
	if raw == "true" || raw == "false" {
		return false
	}
	if strings.Contains(raw, "\n") {
		return true
	}
	if raw == "" {
		return false
	}
	c := raw[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
