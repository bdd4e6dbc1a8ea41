package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	fsys := NewFileSystem()

	info, err := fsys.Stat(link)
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Size())

	resolved, err := fsys.EvalSymlinks(link)
	require.NoError(t, err)
	wantResolved, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, wantResolved, resolved)

	_, err = fsys.Stat(filepath.Join(dir, "missing"))
	assert.True(t, fsys.IsNotExist(err))
	assert.False(t, fsys.IsNotExist(nil))

	abs, err := fsys.Abs("relative")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}
