package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFileExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	exist, err := CheckFileExist(path)
	require.NoError(t, err)
	assert.False(t, exist)

	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	exist, err = CheckFileExist(path)
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestWriteFileSafe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.toml")

	require.NoError(t, WriteFileSafe(path, []byte("a = 1\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a = 1\n", string(data))

	// overwriting keeps the file whole
	require.NoError(t, WriteFileSafe(path, []byte("a = 2\n")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a = 2\n", string(data))
}
