package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/scadparam/scadparam/internal/scad"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderColor is the color for borders.
	BorderColor lipgloss.Color

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetStyle sets the table style.
func (t *Table) SetStyle(style TableStyle) *Table {
	t.style = style
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// ParameterTable renders params with one row per parameter.
func ParameterTable(params []scad.Parameter) string {
	t := NewTable("GROUP", "NAME", "TYPE", "VALUE", "CONSTRAINT", "DESCRIPTION")

	for _, p := range params {
		t.Row(p.Group, p.Name, string(p.EffectiveType()), ValueText(p), ConstraintText(p), p.Description)
	}

	return t.String()
}

// ValueText renders the current value of p as OpenSCAD source.
func ValueText(p scad.Parameter) string {
	if s, ok := scad.Literal(p.EffectiveType(), p.Value); ok {
		return s
	}
	return fmt.Sprint(p.Value)
}

// ConstraintText summarises the range or options of p:
// "10..50", "0..100 step 5", "step 2", "max 8" or "box|cyl".
func ConstraintText(p scad.Parameter) string {
	if len(p.Options) > 0 {
		values := make([]string, len(p.Options))
		for i, opt := range p.Options {
			values[i] = fmt.Sprint(opt.Value)
		}
		return strings.Join(values, "|")
	}

	r := p.Range
	if r.IsEmpty() {
		return ""
	}

	var parts []string
	switch {
	case r.Min != nil && r.Max != nil:
		parts = append(parts, formatFloat(*r.Min)+".."+formatFloat(*r.Max))
	case r.Min != nil:
		parts = append(parts, "min "+formatFloat(*r.Min))
	case r.Max != nil:
		parts = append(parts, "max "+formatFloat(*r.Max))
	}
	if r.Step != nil {
		parts = append(parts, "step "+formatFloat(*r.Step))
	}
	return strings.Join(parts, " ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
