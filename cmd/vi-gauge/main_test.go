package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-gauge/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	assert.FileExists(t, path)

	_, err = execute(t, "config", "init", path)
	assert.Error(t, err, "existing file is kept")
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[slider]\nmode = \"normal\"\n"), 0o644))

	out, err := execute(t, "--config", path, "--log-level", "warn", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `mode = "normal"`)
	assert.Contains(t, out, `level = "warn"`)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.FileName)
	require.NoError(t, config.WriteDefault(cfgPath))
	out := filepath.Join(dir, "frame.png")

	_, err := execute(t, "--config", cfgPath, "render", "--out", out, "--width", "80", "--height", "70", "--value", "75")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 70, img.Bounds().Dy())
}

func TestRender_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[meter]\nmax = -5\n"), 0o644))

	_, err := execute(t, "--config", path, "render", "--out", filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestKeys(t *testing.T) {
	out, err := execute(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "quit\n")
	assert.Contains(t, out, "step_left\n")
}

func TestKeyTable(t *testing.T) {
	kt, err := keyTable(map[string]string{"x": "quit"})
	require.NoError(t, err)
	assert.Contains(t, kt.Runes, 'x')

	_, err = keyTable(map[string]string{"x": "explode"})
	assert.Error(t, err)
}
