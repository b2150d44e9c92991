package version

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return non-empty consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
}

// TestAttachCobraVersionCommand runs the version subcommand.
func TestAttachCobraVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := &cobra.Command{Use: "ide-packager"}
	AttachCobraVersionCommand(root)
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, Full()+"\n", out.String())
}
