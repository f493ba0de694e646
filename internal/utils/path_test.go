package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	_, err := ResolvePath("")
	assert.Error(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	resolved, err := ResolvePath("~/wc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "wc"), resolved)

	resolved, err = ResolvePath("/tmp/../tmp/wc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/tmp/wc"), resolved)
}

func TestEnsureDirAndExists(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")

	require.NoError(t, EnsureDir(nested))
	assert.True(t, DirExists(nested))
	require.NoError(t, EnsureDir(nested)) // idempotent

	file := filepath.Join(nested, "f.txt")
	require.NoError(t, EnsureParent(filepath.Join(nested, "c", "f.txt")))
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.True(t, FileExists(file))
	assert.False(t, FileExists(nested))
	assert.False(t, DirExists(file))
}
