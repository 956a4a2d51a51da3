// FILE: file.go
package log

import (
	"bufio"
	"os"
)

const fileBufferSize = 4096

// fileHelper is the buffered open/write/flush primitive under the rotating
// file sink. It owns at most one handle; open replaces the current target
// after flushing and closing it, so no two handles are ever live at once.
type fileHelper struct {
	file *os.File
	w    *bufio.Writer
}

// open closes the current file, if any, and opens path for append.
// On failure the helper is left with no live handle; write reports an
// error until a later open succeeds.
func (f *fileHelper) open(path string) error {
	if f.file != nil {
		_ = f.w.Flush()
		// Old handle is gone either way; carry on to the open
		_ = f.file.Close()
		f.file = nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.file = nil
		f.w = nil
		return fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	f.file = file
	if f.w == nil {
		f.w = bufio.NewWriterSize(file, fileBufferSize)
	} else {
		f.w.Reset(file)
	}
	return nil
}

// write appends to the buffered file stream
func (f *fileHelper) write(p []byte) error {
	if f.file == nil {
		return fmtErrorf("no open log file")
	}
	if _, err := f.w.Write(p); err != nil {
		return fmtErrorf("failed to write to log file '%s': %w", f.file.Name(), err)
	}
	return nil
}

// flush drains the buffer to the OS
func (f *fileHelper) flush() error {
	if f.file == nil {
		return nil
	}
	if err := f.w.Flush(); err != nil {
		return fmtErrorf("failed to flush log file '%s': %w", f.file.Name(), err)
	}
	return nil
}

// close flushes and releases the current handle
func (f *fileHelper) close() error {
	if f.file == nil {
		return nil
	}
	flushErr := f.w.Flush()
	syncErr := f.file.Sync()
	closeErr := f.file.Close()
	f.file = nil
	f.w = nil
	return combineErrors(combineErrors(flushErr, syncErr), closeErr)
}

// name returns the path of the current file, empty when closed
func (f *fileHelper) name() string {
	if f.file == nil {
		return ""
	}
	return f.file.Name()
}
