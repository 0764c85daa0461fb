package scad

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// The parameter grammar is written against ECMAScript regex semantics:
// multiline anchors, ECMAScript \s, and permissive escapes.
const regexOptions = regexp2.ECMAScript | regexp2.Multiline

var (
	definitionStart = regexp2.MustCompile(`^(module |function )`, regexOptions)
	groupMarker     = regexp2.MustCompile(`^\/\*\s*\[([^\]]+)\]\s*\*\/`, regexOptions)
)

// Section is a slice of the header that belongs to one group.
type Section struct {
	// Group is the trimmed name inside the marker, empty before the first marker.
	Group string
	// Offset is the byte offset of Text within the header.
	Offset int
	// Text starts at the group marker line (or at the start of the header).
	Text string
}

// Header returns the part of source that precedes the first line starting
// with `module ` or `function `. Only this region holds parameters.
func Header(source string) string {
	return source[:headerEnd(source)]
}

// headerEnd returns the byte offset where the header ends.
func headerEnd(source string) int {
	m, err := definitionStart.FindStringMatch(source)
	if err != nil || m == nil {
		return len(source)
	}
	return newRuneIndex(source).byteOffset(m.Index)
}

// Sections splits a header on `/* [Group] */` markers. The first section
// always exists and covers the text before the first marker.
func Sections(header string) []Section {
	idx := newRuneIndex(header)

	type marker struct {
		group string
		start int
	}
	var markers []marker

	m, err := groupMarker.FindStringMatch(header)
	for err == nil && m != nil {
		markers = append(markers, marker{
			group: strings.TrimSpace(m.GroupByNumber(1).String()),
			start: idx.byteOffset(m.Index),
		})
		m, err = groupMarker.FindNextMatch(m)
	}

	firstEnd := len(header)
	if len(markers) > 0 {
		firstEnd = markers[0].start
	}

	sections := make([]Section, 0, len(markers)+1)
	sections = append(sections, Section{Text: header[:firstEnd]})

	for i, mk := range markers {
		end := len(header)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		sections = append(sections, Section{
			Group:  mk.group,
			Offset: mk.start,
			Text:   header[mk.start:end],
		})
	}

	return sections
}

// runeIndex maps regexp2 rune positions back to byte offsets so callers can
// slice the original string without re-encoding it.
type runeIndex struct {
	offsets []int
	size    int
}

func newRuneIndex(s string) runeIndex {
	offsets := make([]int, 0, len(s))
	for i := range s {
		offsets = append(offsets, i)
	}
	return runeIndex{offsets: offsets, size: len(s)}
}

func (r runeIndex) byteOffset(runePos int) int {
	if runePos >= len(r.offsets) {
		return r.size
	}
	return r.offsets[runePos]
}

// span converts a rune position and length into a byte range.
func (r runeIndex) span(runePos, runeLen int) (int, int) {
	return r.byteOffset(runePos), r.byteOffset(runePos + runeLen)
}
