package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rpn35/pkg/fsutil"
)

func TestReadText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prog.rpn")
	require.NoError(t, os.WriteFile(path, []byte("LBL A\nRTN\n"), 0o644))

	text, err := fsutil.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "LBL A\nRTN\n", text)
}

func TestReadTextMissing(t *testing.T) {
	t.Parallel()

	_, err := fsutil.ReadText(filepath.Join(t.TempDir(), "missing.rpn"))
	assert.Error(t, err)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, fsutil.WriteAtomic(path, "A001 x2\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A001 x2\n", string(data))
}

func TestWriteAtomicOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, fsutil.WriteAtomic(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, fsutil.WriteAtomic(filepath.Join(dir, "out.txt"), "content"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.txt", entries[0].Name())
}
