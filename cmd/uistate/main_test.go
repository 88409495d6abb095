package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/uistate/internal/cli"
	"github.com/rshade/uistate/internal/config"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version)
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version)
		require.NotNil(t, root)
		assert.Equal(t, "uistate", root.Use)
		assert.Equal(t, version, root.Version)

		browse, _, err := root.Find([]string{"browse"})
		require.NoError(t, err)
		assert.Equal(t, "browse", browse.Name())
	})
}

func TestRun(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Cleanup(config.ResetGlobalConfigForTest)

	t.Run("help", func(t *testing.T) {
		require.NoError(t, run([]string{"--help"}))
	})

	t.Run("unknown command", func(t *testing.T) {
		require.Error(t, run([]string{"frobnicate"}))
	})

	t.Run("browse missing file", func(t *testing.T) {
		err := run([]string{"browse", filepath.Join(t.TempDir(), "missing.yaml"), "--no-tui"})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
