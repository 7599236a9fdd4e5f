package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lone-wolf-akela/MarkdownRender/internal/render"
)

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"width", "no-color", "theme", "watch", "debug"} {
		require.NotNil(t, rootCmd.Flags().Lookup(name), "missing flag %q", name)
	}
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"a.md", "b.md"})
	require.Error(t, err)
}

func TestOutputWidth_ConfiguredWins(t *testing.T) {
	require.Equal(t, 72, outputWidth(72, nil))
}

func TestRenderTo(t *testing.T) {
	r := render.New(render.Options{Width: 60, NoColor: true})

	var buf bytes.Buffer
	err := renderTo(r, []byte("# Hello\n\nworld"), &buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "# Hello")
	require.Contains(t, buf.String(), "world")
}
