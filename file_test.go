package fileio

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fileioerrors "github.com/poziel/fileio/errors"
)

func TestNew(t *testing.T) {
	t.Run("binds the path without touching the filesystem", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "absent.txt"))
		assert.False(t, f.Exists())
	})

	t.Run("path accessors reflect the bound path", func(t *testing.T) {
		path := filepath.Join("notes", "todo.txt")
		f := New(path, WithFilesystem(NewMemoryFilesystem()))

		assert.Equal(t, path, f.Path())
		assert.Equal(t, "todo.txt", f.Basename())
		assert.Equal(t, "notes", f.Dirname())
	})

	t.Run("AbsPath resolves a relative path", func(t *testing.T) {
		f := New("relative.txt")
		abs := f.AbsPath()

		assert.True(t, filepath.IsAbs(abs))
		assert.True(t, strings.HasSuffix(abs, "relative.txt"))
	})

	t.Run("AbsPath passes an absolute path through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		assert.Equal(t, path, New(path).AbsPath())
	})
}

func TestFile_Create(t *testing.T) {
	t.Run("creates an empty file", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "new.txt"))

		require.NoError(t, f.Create())

		assert.True(t, f.Exists())
		empty, err := f.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "a", "b", "c.txt"))

		require.NoError(t, f.Create())

		assert.True(t, f.Exists())
	})

	t.Run("preserves existing content by default", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "keep.txt"))
		require.NoError(t, f.Overwrite("precious"))

		require.NoError(t, f.Create())

		content, err := f.Read()
		require.NoError(t, err)
		assert.Equal(t, "precious", content)
	})

	t.Run("truncates existing content with WithTruncateOnCreate", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "trunc.txt"), WithTruncateOnCreate())
		require.NoError(t, f.Overwrite("discardable"))

		require.NoError(t, f.Create())

		content, err := f.Read()
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("creating twice is a no-op", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "twice.txt"))

		require.NoError(t, f.Create())
		require.NoError(t, f.Create())

		assert.True(t, f.Exists())
	})

	t.Run("works on the in-memory filesystem", func(t *testing.T) {
		f := New(filepath.Join("mem", "new.txt"), WithFilesystem(NewMemoryFilesystem()))

		require.NoError(t, f.Create())

		assert.True(t, f.Exists())
	})
}

func TestFile_Delete(t *testing.T) {
	t.Run("removes the file", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "gone.txt"))
		require.NoError(t, f.Create())

		require.NoError(t, f.Delete())

		assert.False(t, f.Exists())
	})

	t.Run("deleting an absent file is a no-op", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "never-existed.txt"))

		require.NoError(t, f.Delete())
	})

	t.Run("the path can be created again right after", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "cycle.txt"))
		require.NoError(t, f.Overwrite("first life"))

		require.NoError(t, f.Delete())
		require.NoError(t, f.Create())

		empty, err := f.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)
	})
}

func TestFile_Recreate(t *testing.T) {
	t.Run("leaves an empty file behind", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "reset.txt"))
		require.NoError(t, f.Overwrite("old content"))

		require.NoError(t, f.Recreate())

		assert.True(t, f.Exists())
		empty, err := f.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("works when the file does not exist yet", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "fresh.txt"))

		require.NoError(t, f.Recreate())

		assert.True(t, f.Exists())
	})
}

// TestFile_ReleasesBetweenCalls pins the core discipline of the handle: no
// operation may leave the file open, so delete and recreate always succeed
// immediately after a read or write.
func TestFile_ReleasesBetweenCalls(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "busy.txt"))
	require.NoError(t, f.Overwrite("first"))

	content, err := f.Read()
	require.NoError(t, err)
	require.Equal(t, "first", content)

	require.NoError(t, f.Delete())
	require.NoError(t, f.Create())
	require.NoError(t, f.Append("second"))

	content, err = f.Read()
	require.NoError(t, err)
	assert.Equal(t, "second", content)
}

func TestFile_Size(t *testing.T) {
	t.Run("reports the size in bytes", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "sized.txt"))
		require.NoError(t, f.Overwrite("12345"))

		size, err := f.Size()
		require.NoError(t, err)
		assert.Equal(t, int64(5), size)
	})

	t.Run("missing file reports ErrNotFound", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "absent.txt"))

		_, err := f.Size()
		assert.True(t, fileioerrors.IsNotFound(err))
	})
}

func TestFile_IsEmpty(t *testing.T) {
	t.Run("true for a zero-length file", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "empty.txt"))
		require.NoError(t, f.Create())

		empty, err := f.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("false once content is written", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "full.txt"))
		require.NoError(t, f.Overwrite("x"))

		empty, err := f.IsEmpty()
		require.NoError(t, err)
		assert.False(t, empty)
	})

	t.Run("a missing file counts as empty", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "absent.txt"))

		empty, err := f.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)
	})
}

func TestFile_View(t *testing.T) {
	t.Run("hands the caller a reader scoped to the call", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "view.txt"))
		require.NoError(t, f.Overwrite("scoped"))

		var got string
		require.NoError(t, f.View(func(r io.Reader) error {
			data, err := io.ReadAll(r)
			got = string(data)
			return err
		}))
		assert.Equal(t, "scoped", got)

		// The reader must be released once View returns.
		require.NoError(t, f.Delete())
	})

	t.Run("propagates the callback error unchanged", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "view.txt"))
		require.NoError(t, f.Create())

		sentinel := errors.New("reader gave up")
		err := f.View(func(io.Reader) error { return sentinel })
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("missing file reports ErrNotFound", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "absent.txt"))

		err := f.View(func(io.Reader) error { return nil })
		assert.True(t, fileioerrors.IsNotFound(err))
	})

	t.Run("nil callback reports ErrInvalidInput", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "view.txt"))

		err := f.View(nil)
		assert.True(t, fileioerrors.IsInvalidInput(err))
	})
}

func TestFile_ErrorContext(t *testing.T) {
	t.Run("failures carry operation and path", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "absent.txt"))

		_, err := f.Read()
		require.Error(t, err)

		var opErr *fileioerrors.Error
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "read", opErr.Op)
		assert.Equal(t, f.Path(), opErr.Path)
	})

	t.Run("the OS cause stays reachable through the chain", func(t *testing.T) {
		f := New(filepath.Join(t.TempDir(), "absent.txt"))

		_, err := f.ReadBytes()
		assert.True(t, fileioerrors.IsNotFound(err))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
