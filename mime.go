package fileio

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMimeType is the content type reported when detection fails.
const DefaultMimeType = "application/octet-stream"

// sniffLen is how many leading bytes are read for content detection.
const sniffLen = 512

// MimeType determines the content type using mimetype sniffing where
// possible, falling back to extension-based lookup when the file cannot be
// read. It never fails; undetectable content reports DefaultMimeType.
func (f *File) MimeType() string {
	// If the path points to an existing file, prefer sniffing its content.
	info, err := f.opts.fsys.Stat(f.path)
	if err != nil || info.IsDir() {
		return f.mimeTypeFromExtension()
	}

	file, err := f.opts.fsys.Open(f.path)
	if err != nil {
		return f.mimeTypeFromExtension()
	}
	defer file.Close()

	buf := make([]byte, sniffLen)
	n, _ := file.Read(buf)
	if n > 0 {
		if mt := mimetype.Detect(buf[:n]); mt != nil {
			return mt.String()
		}
	}

	return f.mimeTypeFromExtension()
}

// mimeTypeFromExtension is the fallback for absent, empty or unreadable
// files.
func (f *File) mimeTypeFromExtension() string {
	ext := strings.ToLower(filepath.Ext(f.path))
	if ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return DefaultMimeType
}
