package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		renderOut = ""
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return stdout.String(), stderr.String()
}

func TestVersionCmd(t *testing.T) {
	out, _ := run(t, "version")
	assert.Equal(t, "homepage v"+version+"\n", out)
}

func TestRenderCmd_Stdout(t *testing.T) {
	out, _ := run(t, "render")

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "Like (0)")
	assert.Contains(t, out, "<h2>Develop. Preview. Ship. 🚀</h2>")
}

func TestRenderCmd_File(t *testing.T) {
	memFs := afero.NewMemMapFs()
	prev := renderFs
	renderFs = memFs
	t.Cleanup(func() { renderFs = prev })

	out, errOut := run(t, "render", "--out", "dist/index.html")
	assert.Empty(t, out)
	assert.Contains(t, errOut, "dist/index.html")

	data, err := afero.ReadFile(memFs, "dist/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), `<button type="button">Like (0)</button>`)
}
