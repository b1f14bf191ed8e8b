package filesystem_test

import (
	"testing"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	fs := filesystem.NewMemory()
	testutil.WriteTree(t, fs, "/src", testutil.FileTree{
		"a.txt":     "a",
		"sub/b.txt": "b",
		"empty/":    "",
	})

	require.NoError(t, filesystem.Move(fs, "/src", "/new/parent/dst"))

	assert.False(t, testutil.Exists(t, fs, "/src"))
	assert.Equal(t, testutil.FileTree{
		"a.txt":     "a",
		"sub/b.txt": "b",
		"empty/":    "",
	}, testutil.ReadTree(t, fs, "/new/parent/dst"))
}

func TestMove_DestinationExists(t *testing.T) {
	fs := filesystem.NewMemory()
	testutil.WriteTree(t, fs, "/", testutil.FileTree{
		"src/a.txt": "a",
		"dst/":      "",
	})

	err := filesystem.Move(fs, "/src", "/dst")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathExists))
	assert.True(t, testutil.Exists(t, fs, "/src/a.txt"))
}

func TestCopyTree(t *testing.T) {
	fs := filesystem.NewMemory()
	tree := testutil.FileTree{
		"x/y/z.txt": "deep",
		"top.txt":   "top",
	}
	testutil.WriteTree(t, fs, "/from", tree)

	require.NoError(t, filesystem.CopyTree(fs, "/from", "/to"))

	assert.Equal(t, tree, testutil.ReadTree(t, fs, "/to"))
	assert.Equal(t, tree, testutil.ReadTree(t, fs, "/from"))
}

func TestEnsureAbsent(t *testing.T) {
	fs := filesystem.NewMemory()
	testutil.WriteTree(t, fs, "/", testutil.FileTree{"here.txt": ""})

	assert.NoError(t, filesystem.EnsureAbsent(fs, "/missing"))
	assert.True(t, errors.IsErrorCode(filesystem.EnsureAbsent(fs, "/here.txt"), errors.ErrPathExists))
}

func TestEnsureDir(t *testing.T) {
	fs := filesystem.NewMemory()

	require.NoError(t, filesystem.EnsureDir(fs, "/a/b/c"))
	assert.True(t, testutil.Exists(t, fs, "/a/b/c"))

	fs = afero.NewReadOnlyFs(filesystem.NewMemory())
	assert.True(t, errors.IsErrorCode(filesystem.EnsureDir(fs, "/x"), errors.ErrDirCreate))
}
