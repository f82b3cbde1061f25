package okie

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParentAndSubstitutesPath(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	got, err := WriteFile(root, "a/b/$name.txt", []byte("hello"), Context{Name: "proj"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a", "b", "proj.txt"), got)

	info, err := os.Stat(filepath.Join(root, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	_, err = os.Stat(filepath.Join(root, "a", "b", "$name.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile_ExistingParent(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	_, err := WriteFile(root, "src/main.rs", []byte("fn main() {}"), Context{Name: "p"})
	require.NoError(t, err)
	_, err = WriteFile(root, "src/lib.rs", []byte(""), Context{Name: "p"})
	require.NoError(t, err)
}

func TestWriteFile_PlaceholderInDirectory(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	got, err := WriteFile(root, "$name/README.md", []byte("# readme"), Context{Name: "proj"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "proj", "README.md"), got)
}

func TestWriteFile_OverwritesWithoutAppending(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	ctx := Context{Name: "proj"}
	_, err := WriteFile(root, "f.txt", []byte("a much longer first version"), ctx)
	require.NoError(t, err)
	got, err := WriteFile(root, "f.txt", []byte("short"), ctx)
	require.NoError(t, err)
	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "blocker"), []byte("x"), 0o644))
	_, err := WriteFile(root, "blocker/child.txt", []byte("y"), Context{Name: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCreateDir)
}

func TestWriteFile_TargetIsDirectory(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "taken"), 0o755))
	_, err := WriteFile(root, "taken", []byte("y"), Context{Name: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFile)
}

func TestContextFromDir(t *testing.T) {
	t.Parallel()
	ctx, err := ContextFromDir(filepath.Join("home", "user", "my-project"))
	require.NoError(t, err)
	assert.Equal(t, "my-project", ctx.Name)

	ctx, err = ContextFromDir(filepath.Join("home", "user", "trailing") + string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, "trailing", ctx.Name)

	if runtime.GOOS != "windows" {
		_, err = ContextFromDir("/")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoProjectName)
	}
	_, err = ContextFromDir("")
	require.ErrorIs(t, err, ErrNoProjectName)
}

func TestContextFromWorkingDir(t *testing.T) {
	t.Parallel()
	wd, err := os.Getwd()
	require.NoError(t, err)
	ctx, err := ContextFromWorkingDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(wd), ctx.Name)
}
