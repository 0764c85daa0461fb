package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderDiff renders a parameter diff from raw name lists so this package
// does not import paramdiff.
func RenderDiff(added, removed []string, modified []ModifiedItem, styles *Styles) string {
	if len(added) == 0 && len(removed) == 0 && len(modified) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder

	if len(added) > 0 {
		sb.WriteString(styles.Success.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range added {
			sb.WriteString("  + ")
			sb.WriteString(styles.Success.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(removed) > 0 {
		sb.WriteString(styles.Error.Render("Removed:"))
		sb.WriteString("\n")
		for _, name := range removed {
			sb.WriteString("  - ")
			sb.WriteString(styles.Error.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(modified) > 0 {
		sb.WriteString(styles.Warning.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styles.Warning.Render(mod.Name))
			sb.WriteString("\n")
			for _, line := range strings.Split(mod.Diff, "\n") {
				if line != "" {
					sb.WriteString("    ")
					sb.WriteString(line)
					sb.WriteString("\n")
				}
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(removed), len(modified)))
	sb.WriteString("\n")

	return sb.String()
}

// ModifiedItem represents a modified parameter for rendering.
type ModifiedItem struct {
	Name string
	Diff string
}

// diffSummary returns a summary string of changes.
func diffSummary(added, removed, modified int) string {
	if added == 0 && removed == 0 && modified == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, strconv.Itoa(added)+" added")
	}
	if removed > 0 {
		parts = append(parts, strconv.Itoa(removed)+" removed")
	}
	if modified > 0 {
		parts = append(parts, strconv.Itoa(modified)+" modified")
	}

	return strings.Join(parts, ", ")
}

// SourceDiff renders the changed lines between two versions of a source
// file. Removed lines are prefixed with "-" and the old line number, added
// lines with "+" and the new line number. Unchanged lines are omitted.
// An empty string means the sources are identical.
func SourceDiff(oldSrc, newSrc string, styles *Styles) string {
	if oldSrc == newSrc {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldSrc, newSrc)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		chunk := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldLine += len(chunk)
			newLine += len(chunk)
		case diffmatchpatch.DiffDelete:
			for _, line := range chunk {
				sb.WriteString(styles.Error.Render(fmt.Sprintf("-%4d  %s", oldLine, line)))
				sb.WriteString("\n")
				oldLine++
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range chunk {
				sb.WriteString(styles.Success.Render(fmt.Sprintf("+%4d  %s", newLine, line)))
				sb.WriteString("\n")
				newLine++
			}
		}
	}
	return sb.String()
}

// splitLines splits text into lines without their terminators. A trailing
// newline does not produce an empty final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
