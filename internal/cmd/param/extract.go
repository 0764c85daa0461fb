package param

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/cmdutil"
	"github.com/scadparam/scadparam/internal/output"
	"github.com/scadparam/scadparam/internal/scad"
)

// extractOptions holds the flags for the extract command.
type extractOptions struct {
	groups []string
}

// NewExtractCmd creates the param extract command.
func NewExtractCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &extractOptions{}

	c := &cobra.Command{
		Use:   "extract FILE",
		Short: "Print the parameters of a file",
		Long: `Print the parameters declared in the header of an OpenSCAD file with their
type, value, group, description and range or options.`,
		Example: `  scadparam param extract box.scad
  scadparam param extract box.scad -o table --group Size`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runExtract(c, cfg, args[0], opts)
		},
	}

	c.Flags().StringSliceVarP(&opts.groups, "group", "g", nil, "Only print parameters of these groups (can be repeated)")

	return c
}

func runExtract(c *cobra.Command, cfg *cmdtypes.GlobalConfig, path string, opts *extractOptions) error {
	source, err := cmdutil.ReadSource(path, c.InOrStdin())
	if err != nil {
		return err
	}

	scan := scad.Scan(source)
	logScan(path, scan)

	warnUnknownGroups(path, scan.Parameters, opts.groups)
	params := filterGroups(scan.Parameters, opts.groups)
	return output.WriteParameters(c.OutOrStdout(), params, cfg.OutputFormat())
}

// logScan reports assignments that did not become parameters at debug level.
func logScan(path string, scan scad.ScanResult) {
	fileLog := output.FileLogger(path)
	for _, s := range scan.Skipped {
		fileLog.Debug("assignment is not a parameter", "name", s.Name, "value", strings.TrimSpace(s.Raw), "reason", s.Err)
	}
	for _, name := range scan.Overwritten {
		fileLog.Debug("parameter assigned more than once, last value wins", "name", name)
	}
}

// warnUnknownGroups logs each requested group that no parameter belongs to,
// listing the groups the file declares.
func warnUnknownGroups(path string, params []scad.Parameter, groups []string) {
	available := scad.Groups(params)
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if !slices.ContainsFunc(available, func(a string) bool { return strings.EqualFold(a, g) }) {
			output.FileLogger(path).Warn("no parameters in group", "group", g, "groups", available)
		}
	}
}

// filterGroups keeps parameters whose group matches one of groups, ignoring
// case. No groups keeps everything.
func filterGroups(params []scad.Parameter, groups []string) []scad.Parameter {
	if len(groups) == 0 {
		return params
	}

	out := make([]scad.Parameter, 0, len(params))
	for _, p := range params {
		for _, g := range groups {
			if strings.EqualFold(p.Group, strings.TrimSpace(g)) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
