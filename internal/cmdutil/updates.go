package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/scadparam/scadparam/internal/errors"
	"github.com/scadparam/scadparam/internal/scad"
)

// ParseAssignments turns `name=value` arguments into updates. The value is
// kept as text; scad.Coerce converts it to the parameter's type.
func ParseAssignments(args []string) ([]scad.Update, error) {
	updates := make([]scad.Update, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid assignment %q", arg),
				"", "",
				"use name=value, e.g. width=30 or holes=[3,4,5]",
			)
		}
		updates = append(updates, scad.Update{Name: name, Value: value})
	}
	return updates, nil
}

// LoadValues reads a YAML or JSON mapping of parameter names to values from
// path ("-" for stdin). Updates keep the key order of the document.
func LoadValues(path string, stdin io.Reader) ([]scad.Update, error) {
	var (
		data []byte
		err  error
	)
	if IsStdin(path) {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("values file does not exist", path, "")
		}
		return nil, fmt.Errorf("reading values file %s: %w", path, err)
	}

	return ParseValues(path, data)
}

// ParseValues decodes a values document. An empty document yields no
// updates.
func ParseValues(path string, data []byte) ([]scad.Update, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), path, "", "values files are YAML or JSON maps")
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, oerrors.NewValidationError("values document is not a map", path, "", "write one `name: value` entry per parameter")
	}

	updates := make([]scad.Update, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]

		var value any
		if err := node.Decode(&value); err != nil {
			return nil, oerrors.NewValidationError(err.Error(), fmt.Sprintf("%s:%d", path, node.Line), key.Value, "")
		}
		updates = append(updates, scad.Update{Name: key.Value, Value: value})
	}
	return updates, nil
}

// IsUnknown reports whether an update failed because its name is unknown.
func IsUnknown(r scad.UpdateResult) bool {
	return errors.Is(r.Err, scad.ErrUnknownParameter)
}
