package cmdutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	oerrors "github.com/scadparam/scadparam/internal/errors"
)

// Stdin is the path argument that selects standard input.
const Stdin = "-"

// IsStdin reports whether path selects standard input.
func IsStdin(path string) bool {
	return path == Stdin
}

// ReadSource reads an OpenSCAD source from path, or from stdin when path is
// "-". A missing file is reported as a not found error.
func ReadSource(path string, stdin io.Reader) (string, error) {
	if IsStdin(path) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", oerrors.NewNotFoundError("file does not exist", path, "")
		}
		if os.IsPermission(err) {
			return "", oerrors.NewPermissionError(err.Error(), map[string]string{"Path": path}, "")
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteSource replaces the content of path, keeping its file mode.
func WriteSource(path, source string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return writeError(path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, source); err != nil {
		tmp.Close()
		return writeError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return writeError(path, err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return writeError(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return writeError(path, err)
	}
	return nil
}

func writeError(path string, err error) error {
	if os.IsPermission(err) {
		return oerrors.NewPermissionError(err.Error(), map[string]string{"Path": path}, "check the file and directory permissions")
	}
	return fmt.Errorf("writing %s: %w", path, err)
}
