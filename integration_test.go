// FILE: integration_test.go
package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end: a logger driving a rotating file sink across an hour boundary
func TestLoggerRotatingFileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)
	defer fs.Close()

	l := New("app", fs)
	l.SetPattern("%v", TimeUTC)

	l.Info("hello")
	l.Flush()

	oldFile := filepath.Join(dir, "app_2024-01-01-13.log")
	content := readFile(t, oldFile)
	assert.True(t, strings.HasSuffix(content, "hello\n"))

	clock.Set(time.Date(2024, 1, 1, 14, 2, 0, 0, time.UTC))
	l.Info("world")
	l.Flush()

	newFile := filepath.Join(dir, "app_2024-01-01-14.log")
	assert.Equal(t, "hello\n", readFile(t, oldFile))
	assert.Equal(t, "world\n", readFile(t, newFile))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// flush_on(warn): info stays buffered, warn lands on disk by itself
func TestLoggerFlushOnWithFileSink(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)
	defer fs.Close()

	l := New("app", fs)
	l.SetPattern("%v", TimeUTC)
	l.FlushOn(LevelWarn)

	l.Info("buffered info")
	assert.Equal(t, "", readFile(t, fs.CurrentFileName()))

	l.Warn("flushed warn")
	assert.Equal(t, "buffered info\nflushed warn\n", readFile(t, fs.CurrentFileName()))
}

// A console sink and a file sink fed by one logger, each with its own gate
func TestLoggerMultiSinkThresholds(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now, WithForceFlush(true))
	require.NoError(t, err)
	defer fs.Close()
	fs.SetLevel(LevelError)

	console := &recordingSink{}

	l := New("app", console, fs)
	l.SetLevel(LevelTrace)
	l.SetPattern("%v", TimeUTC)

	l.Debug("debug line")
	l.Error("error line")

	assert.Equal(t, 2, console.count())
	assert.Equal(t, "error line\n", readFile(t, fs.CurrentFileName()))
}

// Restart with the same base name within the same hour appends to the file
func TestRotatingFileSinkAppendsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "app.log")
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 10, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(base, clock.Now)
	require.NoError(t, err)
	writeLine(t, fs, "run one")
	require.NoError(t, fs.Close())

	clock.Advance(5 * time.Minute)
	fs, err = newRotatingFileSink(base, clock.Now)
	require.NoError(t, err)
	writeLine(t, fs, "run two")
	require.NoError(t, fs.Close())

	assert.Equal(t, "run one\nrun two\n",
		readFile(t, filepath.Join(dir, "app_2024-01-01-13.log")))
}
