package fileio

import (
	"crypto/md5"  //nolint:gosec // offered for integrity checks, not authentication
	"crypto/sha1" //nolint:gosec // offered for integrity checks, not authentication
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	fileioerrors "github.com/poziel/fileio/errors"
)

// Algorithm identifies a digest algorithm accepted by HashWith.
type Algorithm string

// Digest algorithms supported by HashWith.
const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// Hasher returns a fresh hash.Hash for the algorithm. Unknown algorithms
// report ErrInvalidInput.
//
//nolint:ireturn // hash.Hash is the stdlib contract for streaming digests.
func (a Algorithm) Hasher() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil //nolint:gosec // integrity digest selected by the caller
	case SHA1:
		return sha1.New(), nil //nolint:gosec // integrity digest selected by the caller
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: unknown digest algorithm %q", fileioerrors.ErrInvalidInput, string(a))
	}
}

// Hash returns the hex-encoded SHA-256 digest of the file content.
func (f *File) Hash() (string, error) {
	return f.HashWith(SHA256)
}

// HashWith returns the hex-encoded digest of the file content computed with
// the given algorithm. The content is streamed through the hash, never
// loaded whole.
func (f *File) HashWith(alg Algorithm) (string, error) {
	hasher, err := alg.Hasher()
	if err != nil {
		return "", fileioerrors.NewPathError("hash", f.path, err)
	}

	file, err := f.opts.fsys.Open(f.path)
	if err != nil {
		return "", f.fsError("hash", err)
	}
	defer file.Close()

	if _, err := io.Copy(hasher, file); err != nil {
		return "", f.fsError("hash", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
