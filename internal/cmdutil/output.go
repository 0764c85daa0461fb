package cmdutil

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/charmbracelet/log"

	oerrors "github.com/scadparam/scadparam/internal/errors"
	"github.com/scadparam/scadparam/internal/output"
	"github.com/scadparam/scadparam/internal/scad"
)

// ReportOptions controls ReportUpdates.
type ReportOptions struct {
	// Path is the source file, used for log prefixes and error locations.
	Path string

	// Strict turns the first rejected update into an error.
	Strict bool
}

// ReportUpdates logs one line per update result against the parameters of
// the original source. Unknown names get spelling suggestions. In strict
// mode the first rejected update is returned as an ExitError: unknown names
// exit with ExitNotFound and invalid values with ExitValidationError.
func ReportUpdates(params []scad.Parameter, results []scad.UpdateResult, opts ReportOptions) error {
	fileLog := output.FileLogger(opts.Path)
	names := scad.Names(params)

	var firstErr error
	for _, r := range results {
		err := reportUpdate(fileLog, params, names, r, opts.Path)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if opts.Strict && firstErr != nil {
		return oerrors.NewExitError(firstErr, oerrors.ExitCodeFromError(firstErr))
	}
	return nil
}

func reportUpdate(fileLog *log.Logger, params []scad.Parameter, names []string, r scad.UpdateResult, path string) error {
	switch {
	case r.Applied():
		p, _ := scad.Find(params, r.Name)
		literal, _ := scad.Literal(p.EffectiveType(), r.Value)
		status := output.StatusApplied
		if reflect.DeepEqual(p.Value, r.Value) {
			status = output.StatusUnchanged
		}
		fileLog.Info(output.FormatUpdateLine(r.Name, literal, status))
		return nil

	case IsUnknown(r):
		suggestions := Suggest(r.Name, names)
		err := oerrors.NewUnknownParameterError(r.Name, path, suggestions)
		keyvals := []any{"name", r.Name}
		if len(suggestions) > 0 {
			keyvals = append(keyvals, "did_you_mean", suggestions)
		}
		fileLog.Warn(output.FormatUpdateLine(r.Name, "", output.StatusSkipped), keyvals...)
		return err

	default:
		fileLog.Warn(output.FormatUpdateLine(r.Name, "", output.StatusSkipped), "error", r.Err)
		cause := r.Err
		if errors.Is(cause, scad.ErrInvalidValue) {
			return oerrors.NewValidationError(cause.Error(), path, r.Name, "")
		}
		return fmt.Errorf("updating %s: %w", r.Name, cause)
	}
}

// PrintValidationError prints a validation error in a user-friendly format.
// DetailError values are printed as their multi-line block; other errors
// use the key-value log format.
func PrintValidationError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Type))
		output.Details(detail.Error())
		return
	}
	output.Error(msg, "error", err)
}
