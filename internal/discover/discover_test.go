package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestFilesRecursiveAndFiltered(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.json"))
	touch(t, filepath.Join(root, "a.jsonl"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "deep", "c.JSONL"))
	touch(t, filepath.Join(root, "sub", "d.Json"))

	files, err := Files(root)
	require.NoError(t, err)
	require.Len(t, files, 4)
	assert.Equal(t, []string{
		filepath.Join(root, "a.jsonl"),
		filepath.Join(root, "b.json"),
		filepath.Join(root, "sub", "d.Json"),
		filepath.Join(root, "sub", "deep", "c.JSONL"),
	}, files)
}

func TestFilesEmptyDir(t *testing.T) {
	files, err := Files(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesRejectsMissingRoot(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestFilesRejectsPlainFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.json")
	touch(t, path)
	_, err := Files(path)
	assert.ErrorIs(t, err, ErrNotDirectory)
}
