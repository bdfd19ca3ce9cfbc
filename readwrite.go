package fileio

import (
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5/util"
)

// Read returns the whole file content as a string.
func (f *File) Read() (string, error) {
	data, err := f.readAll("read")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBytes returns the whole file content.
func (f *File) ReadBytes() ([]byte, error) {
	return f.readAll("read")
}

// ReadLines returns the content split into lines. Terminators are not part
// of the result: a trailing newline does not produce an empty final line
// and Windows line endings are tolerated.
func (f *File) ReadLines() ([]string, error) {
	data, err := f.readAll("readLines")
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

// Append appends exactly text to the file, creating it first when absent.
// No newline is added; use AppendLines for line-oriented writes.
func (f *File) Append(text string) error {
	return f.appendBytes("append", []byte(text))
}

// AppendLines appends the given lines to the file, each followed by a
// newline, creating the file first when absent.
func (f *File) AppendLines(lines ...string) error {
	return f.appendBytes("appendLines", []byte(joinLines(lines)))
}

// Overwrite replaces the file content with exactly text, creating the file
// when absent.
func (f *File) Overwrite(text string) error {
	return f.writeAll("overwrite", []byte(text))
}

// OverwriteBytes replaces the file content with data, creating the file
// when absent.
func (f *File) OverwriteBytes(data []byte) error {
	return f.writeAll("overwrite", data)
}

// WriteLines replaces the file content with the given lines, each followed
// by a newline.
func (f *File) WriteLines(lines ...string) error {
	return f.writeAll("writeLines", []byte(joinLines(lines)))
}

// readAll reads the whole file, reporting failures under the given op.
func (f *File) readAll(op string) ([]byte, error) {
	data, err := util.ReadFile(f.opts.fsys, f.path)
	if err != nil {
		return nil, f.fsError(op, err)
	}
	return data, nil
}

// writeAll replaces the file content, reporting failures under the given op.
func (f *File) writeAll(op string, data []byte) error {
	if err := util.WriteFile(f.opts.fsys, f.path, data, f.opts.fileMode); err != nil {
		return f.fsError(op, err)
	}

	if f.opts.logger != nil {
		f.opts.logger.Debug("replaced file content", "path", f.path, "bytes", len(data))
	}
	return nil
}

// appendBytes appends data to the file, creating it when absent. The
// write-then-close error handling mirrors util.WriteFile.
func (f *File) appendBytes(op string, data []byte) error {
	file, err := f.opts.fsys.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, f.opts.fileMode)
	if err != nil {
		return f.fsError(op, err)
	}

	n, err := file.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return f.fsError(op, err)
	}

	if f.opts.logger != nil {
		f.opts.logger.Debug("appended to file", "path", f.path, "bytes", len(data))
	}
	return nil
}

// splitLines splits content on "\n", strips a trailing "\r" from each line
// and drops the empty element a trailing newline would otherwise produce.
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// joinLines terminates every line with a newline.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
