package fileio

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
)

const (
	// DefaultFileMode is the permission mode applied to files created by a
	// handle.
	DefaultFileMode os.FileMode = 0o644

	// DefaultDirMode is the permission mode applied to parent directories
	// created by Create and Recreate.
	DefaultDirMode os.FileMode = 0o755
)

// fileOptions holds configuration options for a File handle.
type fileOptions struct {
	fsys     billy.Filesystem
	logger   *slog.Logger
	fileMode os.FileMode
	dirMode  os.FileMode
	truncate bool
	now      func() time.Time
}

// Option is a functional option for configuring a File handle.
type Option func(*fileOptions)

// WithFilesystem sets a custom filesystem implementation for file operations.
// This allows using in-memory filesystems for testing or virtual filesystems.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(opts *fileOptions) {
		if fsys != nil {
			opts.fsys = fsys
		}
	}
}

// WithLogger configures the handle with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *fileOptions) {
		opts.logger = logger
	}
}

// WithFileMode sets the permission mode for files created by the handle.
// Default is 0o644.
func WithFileMode(mode os.FileMode) Option {
	return func(opts *fileOptions) {
		opts.fileMode = mode
	}
}

// WithDirMode sets the permission mode for parent directories created by
// Create and Recreate. Default is 0o755.
func WithDirMode(mode os.FileMode) Option {
	return func(opts *fileOptions) {
		opts.dirMode = mode
	}
}

// WithTruncateOnCreate makes Create truncate an existing file instead of
// leaving its content in place. Default is to preserve existing content.
func WithTruncateOnCreate() Option {
	return func(opts *fileOptions) {
		opts.truncate = true
	}
}

// WithClock sets the time source used for backup file names.
// This is mainly useful for deterministic tests. Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(opts *fileOptions) {
		if now != nil {
			opts.now = now
		}
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *fileOptions {
	return &fileOptions{
		fsys:     NewOSFilesystem(),
		logger:   nil, // No default logger
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
		now:      time.Now,
	}
}

// applyOptions applies the given options to the file options.
func applyOptions(opts *fileOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
