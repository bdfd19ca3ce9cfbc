package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	fileioerrors "github.com/poziel/fileio/errors"
)

// File is a handle bound to a single filesystem path.
//
// The handle stores the path and its configuration, never an open
// descriptor. Every operation opens the file, acts and closes it before
// returning, so the file can be deleted, replaced or recreated between any
// two calls on the same handle.
type File struct {
	path string
	opts *fileOptions
}

// New binds a handle to path. The path does not have to exist yet; Create,
// Exists and all write operations accept absent paths.
//
// Multi-segment paths are joined by the caller:
//
//	f := fileio.New(filepath.Join(dir, "notes.txt"))
func New(path string, options ...Option) *File {
	opts := defaultOptions()
	applyOptions(opts, options)
	return &File{
		path: path,
		opts: opts,
	}
}

// Path returns the bound path exactly as it was given to New.
func (f *File) Path() string {
	return f.path
}

// Basename returns the final element of the bound path.
func (f *File) Basename() string {
	return filepath.Base(f.path)
}

// Dirname returns the directory portion of the bound path, without
// resolving it against the working directory.
func (f *File) Dirname() string {
	return filepath.Dir(f.path)
}

// AbsPath returns the absolute form of the bound path. When the working
// directory cannot be resolved it falls back to the cleaned bound path, so
// it never fails.
func (f *File) AbsPath() string {
	abs, err := filepath.Abs(f.path)
	if err != nil {
		return filepath.Clean(f.path)
	}
	return abs
}

// Exists reports whether the bound path currently exists. Stat failures are
// reported as absence.
func (f *File) Exists() bool {
	return f.statExists(f.path)
}

// Create makes sure the file exists, creating missing parent directories
// first. An existing file is left untouched unless the handle was built
// with WithTruncateOnCreate.
func (f *File) Create() error {
	return f.create("create")
}

// Delete removes the file. Deleting a file that does not exist is a no-op.
func (f *File) Delete() error {
	return f.remove("delete")
}

// Recreate deletes the file and creates it again, leaving an empty file
// behind regardless of the create mode.
func (f *File) Recreate() error {
	if err := f.remove("recreate"); err != nil {
		return err
	}
	return f.create("recreate")
}

// Size returns the current size of the file in bytes.
func (f *File) Size() (int64, error) {
	info, err := f.opts.fsys.Stat(f.path)
	if err != nil {
		return 0, f.fsError("size", err)
	}
	return info.Size(), nil
}

// IsEmpty reports whether the file has no content. A path that does not
// exist counts as empty.
func (f *File) IsEmpty() (bool, error) {
	info, err := f.opts.fsys.Stat(f.path)
	switch {
	case err == nil:
		return info.Size() == 0, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, f.fsError("isEmpty", err)
	}
}

// View opens the file read-only and hands the reader to fn. The file is
// closed when View returns, whether fn succeeds, fails or panics. Errors
// returned by fn are passed through unchanged.
func (f *File) View(fn func(io.Reader) error) error {
	if fn == nil {
		return fileioerrors.NewPathError("view", f.path, fileioerrors.ErrInvalidInput).
			WithMessage("nil view function")
	}

	file, err := f.opts.fsys.Open(f.path)
	if err != nil {
		return f.fsError("view", err)
	}
	defer file.Close()

	return fn(file)
}

func (f *File) create(op string) error {
	if dir := filepath.Dir(f.path); dir != "" && dir != "." {
		if err := f.opts.fsys.MkdirAll(dir, f.opts.dirMode); err != nil {
			return f.fsError(op, err)
		}
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if f.opts.truncate {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	file, err := f.opts.fsys.OpenFile(f.path, flag, f.opts.fileMode)
	if err != nil {
		if !f.opts.truncate && errors.Is(err, fs.ErrExist) {
			return nil
		}
		return f.fsError(op, err)
	}
	if err := file.Close(); err != nil {
		return f.fsError(op, err)
	}

	if f.opts.logger != nil {
		f.opts.logger.Debug("created file", "path", f.path)
	}
	return nil
}

func (f *File) remove(op string) error {
	if err := f.opts.fsys.Remove(f.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return f.fsError(op, err)
	}

	if f.opts.logger != nil {
		f.opts.logger.Debug("deleted file", "path", f.path)
	}
	return nil
}

// statExists reports whether path exists on the handle's filesystem.
func (f *File) statExists(path string) bool {
	_, err := f.opts.fsys.Stat(path)
	return err == nil
}

// fsError classifies a filesystem failure and attaches operation and path
// context. Not-exist failures map to ErrNotFound, everything else to ErrIO.
func (f *File) fsError(op string, err error) error {
	kind := fileioerrors.ErrIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = fileioerrors.ErrNotFound
	}
	return f.opError(op, kind, err)
}

// opError wraps err with the given error kind plus operation and path context.
func (f *File) opError(op string, kind, err error) error {
	return fileioerrors.NewPathError(op, f.path, fmt.Errorf("%w: %w", kind, err))
}
