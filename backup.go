package fileio

import (
	"fmt"
	"io"
	"os"
)

// backupStamp is the timestamp layout embedded in backup file names.
const backupStamp = "20060102150405"

// Backup copies the file to a sibling named "<path>.<timestamp>.bak" and
// returns the backup path. When that name is already taken, a numeric
// suffix is inserted before the .bak extension. The copy is streamed and
// both files are closed before Backup returns.
func (f *File) Backup() (string, error) {
	src, err := f.opts.fsys.Open(f.path)
	if err != nil {
		return "", f.fsError("backup", err)
	}
	defer src.Close()

	target := f.backupName()

	dst, err := f.opts.fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, f.opts.fileMode)
	if err != nil {
		return "", f.fsError("backup", err)
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", f.fsError("backup", err)
	}

	if f.opts.logger != nil {
		f.opts.logger.Debug("created backup", "path", f.path, "backup_path", target)
	}
	return target, nil
}

// backupName returns the first free backup name for the current clock tick.
func (f *File) backupName() string {
	stamp := f.opts.now().Format(backupStamp)
	name := fmt.Sprintf("%s.%s.bak", f.path, stamp)
	for n := 1; f.statExists(name); n++ {
		name = fmt.Sprintf("%s.%s.%d.bak", f.path, stamp, n)
	}
	return name
}
