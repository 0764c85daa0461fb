package scad

import (
	"regexp"
	"strings"
)

var shellSpecial = regexp.MustCompile("([\"'$`\\\\])")

// Defines renders params as `-Dname=value` command-line overrides for the
// OpenSCAD compiler, in order. String values are double quoted with shell
// metacharacters escaped; lists are bracketed. Unnamed parameters and values
// that cannot be rendered for their type are dropped.
func Defines(params []Parameter) []string {
	defines := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		value, ok := defineValue(p)
		if !ok {
			continue
		}
		defines = append(defines, "-D"+p.Name+"="+value)
	}
	return defines
}

func defineValue(p Parameter) (string, bool) {
	switch t := p.EffectiveType(); t {
	case TypeString:
		return shellQuote(formatScalar(p.Value)), true
	case TypeStringArray:
		items, ok := listItems(p.Value)
		if !ok {
			return "", false
		}
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = shellQuote(formatScalar(item))
		}
		return "[" + strings.Join(parts, ",") + "]", true
	default:
		return Literal(t, p.Value)
	}
}

func shellQuote(s string) string {
	return `"` + shellSpecial.ReplaceAllString(s, `\$1`) + `"`
}
