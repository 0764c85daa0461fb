package param

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/artifact"
	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/cmdutil"
	"github.com/scadparam/scadparam/internal/output"
)

// artifactOptions holds the flags for the artifact command.
type artifactOptions struct {
	title string
	sets  []string
	save  string
}

// NewArtifactCmd creates the param artifact command.
func NewArtifactCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &artifactOptions{}

	c := &cobra.Command{
		Use:   "artifact FILE",
		Short: "Print an artifact document for a model",
		Long: `Print a document holding the title, version, code, parameters and detected
libraries of a model. FILE is an OpenSCAD source or a previously written
artifact (.yaml, .yml or .json).

Changing values with --set bumps the version (v1 becomes v2) and re-extracts
the parameters from the patched code.`,
		Example: `  scadparam param artifact box.scad --title "Storage Box" --save box.yaml
  scadparam param artifact box.yaml --set width=40 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runArtifact(c, cfg, args[0], opts)
		},
	}

	c.Flags().StringVar(&opts.title, "title", "", "Artifact title (default: derived from the file name)")
	c.Flags().StringArrayVar(&opts.sets, "set", nil, "Change a value, as NAME=VALUE (can be repeated)")
	c.Flags().StringVar(&opts.save, "save", "", "Write the document to this path instead of stdout")

	return c
}

func runArtifact(c *cobra.Command, cfg *cmdtypes.GlobalConfig, path string, opts *artifactOptions) error {
	libs := cfg.Libraries()

	var a *artifact.Artifact
	if _, ok := encodingForPath(path); ok {
		loaded, err := artifact.Load(path)
		if err != nil {
			return err
		}
		a = loaded
		if opts.title != "" {
			a.Title = strings.TrimSpace(opts.title)
		}
	} else {
		source, err := cmdutil.ReadSource(path, c.InOrStdin())
		if err != nil {
			return err
		}
		title := opts.title
		if title == "" {
			title = artifact.TitleFromPath(path)
		}
		a = artifact.New(title, source, libs)
	}

	if len(opts.sets) > 0 {
		updates, err := cmdutil.ParseAssignments(opts.sets)
		if err != nil {
			return err
		}
		before := a.Parameters
		results := a.Apply(updates, libs)
		if err := cmdutil.ReportUpdates(before, results, cmdutil.ReportOptions{Path: path}); err != nil {
			return err
		}
	}

	output.Debug("artifact", "title", a.Title, "version", a.Version, "parameters", len(a.Parameters), "libraries", len(a.Libraries))

	enc := artifact.EncodingYAML
	if cfg.OutputFormat() == output.FormatJSON {
		enc = artifact.EncodingJSON
	}

	if opts.save != "" {
		if e, ok := encodingForPath(opts.save); ok {
			enc = e
		}
		if err := artifact.Save(opts.save, a, enc); err != nil {
			return err
		}
		output.FileLogger(opts.save).Info(output.FormatCheckmark("artifact saved"), "version", a.Version)
		return nil
	}

	return artifact.Write(c.OutOrStdout(), a, enc)
}

// encodingForPath maps document extensions to an encoding.
func encodingForPath(path string) (artifact.Encoding, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return artifact.EncodingYAML, true
	case ".json":
		return artifact.EncodingJSON, true
	}
	return "", false
}
