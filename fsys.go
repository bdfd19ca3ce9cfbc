package fileio

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// osFS is a billy.Filesystem that acts like the native filesystem.
type osFS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (o *osFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (o *osFS) Root() string {
	return "/"
}

// NewOSFilesystem creates a filesystem that acts like the native one:
// absolute and relative paths are handed to the operating system unmodified.
// It is the default backend for New.
//
//nolint:ireturn // returning the interface keeps the backend swappable.
func NewOSFilesystem() billy.Filesystem {
	return &osFS{}
}

// NewMemoryFilesystem creates an in-memory filesystem. Combined with
// WithFilesystem it lets tests exercise handles without touching disk.
//
//nolint:ireturn // returning the interface keeps the backend swappable.
func NewMemoryFilesystem() billy.Filesystem {
	return memfs.New()
}
