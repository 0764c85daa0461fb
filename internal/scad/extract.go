package scad

import (
	"github.com/dlclark/regexp2"
)

// assignment matches `name = value;` at a line start, with an optional
// same-line `//` comment.
var assignment = regexp2.MustCompile(`^([a-z0-9A-Z_$]+)\s*=\s*([^;]+);[\t\f\v ]*(\/\/[^\n]*)?`, regexOptions)

// Skipped records an assignment that did not become a parameter.
type Skipped struct {
	Name  string
	Raw   string
	Group string
	Err   error
}

// ScanResult is the detailed outcome of a header scan.
type ScanResult struct {
	Parameters []Parameter

	// Skipped lists assignments whose value is not a supported literal.
	Skipped []Skipped

	// Overwritten lists names that were assigned more than once; the last
	// assignment wins.
	Overwritten []string
}

// Extract returns the parameters declared in the header of source, in the
// order their names are first seen. It never fails: assignments that cannot
// be classified are left out.
func Extract(source string) []Parameter {
	return Scan(source).Parameters
}

// Scan is Extract with a report of skipped and overwritten assignments.
func Scan(source string) ScanResult {
	header := Header(source)
	set := newParameterSet()
	var skipped []Skipped

	for _, section := range Sections(header) {
		idx := newRuneIndex(section.Text)

		m, err := assignment.FindStringMatch(section.Text)
		for err == nil && m != nil {
			name := m.GroupByNumber(1).String()
			raw := m.GroupByNumber(2).String()

			p, convErr := newParameter(name, raw, section.Group)
			if convErr != nil {
				skipped = append(skipped, Skipped{Name: name, Raw: raw, Group: section.Group, Err: convErr})
			} else {
				if c := m.GroupByNumber(3); len(c.Captures) > 0 {
					p.Range, p.Options = ParseComment(c.String(), p.Type)
				}
				start := section.Offset + idx.byteOffset(m.Index)
				p.Description = describe(header[:start])
				set.put(p)
			}

			m, err = assignment.FindNextMatch(m)
		}
	}

	return ScanResult{
		Parameters:  set.values(),
		Skipped:     skipped,
		Overwritten: set.overwritten,
	}
}

func newParameter(name, raw, group string) (Parameter, error) {
	value, typ, err := ConvertType(raw)
	if err != nil {
		return Parameter{}, err
	}
	if isReference(raw) {
		return Parameter{}, ErrUnsupportedValue
	}

	return Parameter{
		Name:         name,
		DisplayName:  DisplayName(name),
		Value:        value,
		DefaultValue: cloneValue(value),
		Type:         typ,
		Group:        group,
	}, nil
}

// parameterSet is an insertion-ordered map keyed by name. Re-inserting a
// name replaces its value but keeps its original position.
type parameterSet struct {
	order       []string
	byName      map[string]Parameter
	overwritten []string
}

func newParameterSet() *parameterSet {
	return &parameterSet{byName: make(map[string]Parameter)}
}

func (s *parameterSet) put(p Parameter) {
	if _, ok := s.byName[p.Name]; ok {
		s.overwritten = append(s.overwritten, p.Name)
	} else {
		s.order = append(s.order, p.Name)
	}
	s.byName[p.Name] = p
}

func (s *parameterSet) values() []Parameter {
	out := make([]Parameter, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Find returns the parameter with the given name.
func Find(params []Parameter, name string) (Parameter, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Names returns the names of params in order.
func Names(params []Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// Groups returns the distinct group names of params in first-seen order.
func Groups(params []Parameter) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, p := range params {
		if !seen[p.Group] {
			seen[p.Group] = true
			groups = append(groups, p.Group)
		}
	}
	return groups
}
