package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchFlags_AddTo(t *testing.T) {
	var pf PatchFlags
	cmd := &cobra.Command{Use: "test"}
	pf.AddTo(cmd)

	writeFlag := cmd.Flags().Lookup("write")
	require.NotNil(t, writeFlag)
	assert.Equal(t, "w", writeFlag.Shorthand)
	assert.Equal(t, "false", writeFlag.DefValue)

	require.NotNil(t, cmd.Flags().Lookup("diff"))
	require.NotNil(t, cmd.Flags().Lookup("strict"))
}

func TestPatchFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		flags   PatchFlags
		path    string
		wantErr string
	}{
		{"print from file", PatchFlags{}, "box.scad", ""},
		{"write file", PatchFlags{Write: true}, "box.scad", ""},
		{"diff stdin", PatchFlags{Diff: true}, "-", ""},
		{"write stdin", PatchFlags{Write: true}, "-", "stdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.Validate(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValuesFlags(t *testing.T) {
	var vf ValuesFlags
	cmd := &cobra.Command{Use: "test"}
	vf.AddTo(cmd)

	valuesFlag := cmd.Flags().Lookup("values")
	require.NotNil(t, valuesFlag)
	assert.Equal(t, "f", valuesFlag.Shorthand)
	assert.Equal(t, "stringArray", valuesFlag.Value.Type())

	assert.Error(t, vf.Validate())
	require.NoError(t, cmd.Flags().Parse([]string{"-f", "a.yaml", "--values", "b.yaml"}))
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, vf.Files)
	assert.NoError(t, vf.Validate())
}
