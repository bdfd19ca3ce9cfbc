// Package fileio provides a path-bound convenience handle for everyday file
// work. A handle binds to one path and offers existence checks, creation
// and deletion, plain and line-oriented reads and writes, JSON, YAML and
// CSV codecs, content digests, timestamped backups and MIME detection
// without the caller juggling descriptors.
//
// Every operation acquires the file for the duration of the call only: it
// opens, acts and closes before returning. A handle therefore never blocks
// deletion or replacement of its file, and the same handle stays valid
// across the whole lifecycle of the path it names.
//
// Key features:
//   - Single-path handles that never retain open descriptors
//   - Progressive configuration through functional options
//   - Pluggable filesystem backend, with an in-memory one for tests
//   - Structured codecs for JSON, YAML and CSV content
//   - Streaming digests and timestamped backup copies
//   - Error classification with operation and path context
//
// Example usage:
//
//	f := fileio.New("notes/todo.txt")
//	if err := f.Create(); err != nil {
//	    return err
//	}
//
//	// Append a line and read the file back
//	if err := f.AppendLines("buy milk"); err != nil {
//	    return err
//	}
//	content, err := f.Read()
//	if err != nil {
//	    return err
//	}
package fileio
