// FILE: rotating_test.go
package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives rotation deterministically in tests
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func writeLine(t *testing.T, fs *RotatingFileSink, line string) {
	t.Helper()
	r := testRecord(LevelInfo, line)
	r.Formatted = []byte(line + "\n")
	require.NoError(t, fs.Log(r))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestHourlyScheduleFileName(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		now      time.Time
		expected string
	}{
		{
			"with extension",
			"app.log",
			time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC),
			"app_2024-01-01-13.log",
		},
		{
			"without extension",
			"app",
			time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
			"app_2024-12-31-23",
		},
		{
			"path with extension",
			"logs/server.log",
			time.Date(2024, 6, 5, 9, 10, 11, 0, time.UTC),
			"logs/server_2024-06-05-09.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HourlySchedule{}.FileName(tt.base, tt.now))
		})
	}
}

func TestHourlyScheduleNext(t *testing.T) {
	s := HourlySchedule{}

	now := time.Date(2024, 1, 1, 13, 45, 30, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), s.Next(now))

	// Already on the boundary: next deadline is strictly later
	boundary := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC), s.Next(boundary))

	// Day wrap
	late := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), s.Next(late))
}

func TestDailySchedule(t *testing.T) {
	s := DailySchedule{}
	now := time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "app_2024-01-01.log", s.FileName("app.log", now))
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), s.Next(now))

	midnight := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), s.Next(midnight))
}

func TestRotatingFileSinkBasicWrite(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "app.log")
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(base, clock.Now)
	require.NoError(t, err)
	defer fs.Close()

	expected := filepath.Join(dir, "app_2024-01-01-13.log")
	assert.Equal(t, expected, fs.CurrentFileName())

	writeLine(t, fs, "hello")
	require.NoError(t, fs.Flush())

	assert.Equal(t, "hello\n", readFile(t, expected))
}

func TestRotatingFileSinkNoRotationWithinPeriod(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)
	defer fs.Close()

	first := fs.CurrentFileName()
	writeLine(t, fs, "a")
	clock.Advance(59 * time.Minute)
	writeLine(t, fs, "b")

	assert.Equal(t, first, fs.CurrentFileName())
	require.NoError(t, fs.Flush())
	assert.Equal(t, "a\nb\n", readFile(t, first))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRotatingFileSinkRotatesAcrossBoundary(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)
	defer fs.Close()

	writeLine(t, fs, "hello")

	clock.Set(time.Date(2024, 1, 1, 14, 2, 0, 0, time.UTC))
	writeLine(t, fs, "world")
	require.NoError(t, fs.Flush())

	oldFile := filepath.Join(dir, "app_2024-01-01-13.log")
	newFile := filepath.Join(dir, "app_2024-01-01-14.log")

	assert.Equal(t, newFile, fs.CurrentFileName())
	assert.Equal(t, "hello\n", readFile(t, oldFile))
	assert.Equal(t, "world\n", readFile(t, newFile))
}

func TestRotatingFileSinkCatchUpAfterIdleGap(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)
	defer fs.Close()

	writeLine(t, fs, "before")

	// Idle for five hours; the next write rotates exactly once, straight to
	// the current period's file with no intermediate files
	clock.Set(time.Date(2024, 1, 1, 15, 12, 0, 0, time.UTC))
	writeLine(t, fs, "after")
	require.NoError(t, fs.Flush())

	assert.Equal(t, filepath.Join(dir, "app_2024-01-01-15.log"), fs.CurrentFileName())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := []string{entries[0].Name(), entries[1].Name()}
	assert.ElementsMatch(t, []string{"app_2024-01-01-10.log", "app_2024-01-01-15.log"}, names)
}

func TestRotatingFileSinkFailedRotationRetries(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "logs")
	require.NoError(t, os.MkdirAll(dir, 0755))

	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))
	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)

	writeLine(t, fs, "first")
	require.NoError(t, fs.Flush())

	// Make the rotation target unopenable, then cross the boundary
	require.NoError(t, os.RemoveAll(dir))
	clock.Set(time.Date(2024, 1, 1, 14, 5, 0, 0, time.UTC))

	r := testRecord(LevelInfo, "lost")
	r.Formatted = []byte("lost\n")
	require.Error(t, fs.Log(r))

	// Restore the directory; the next write retries the same rotation
	require.NoError(t, os.MkdirAll(dir, 0755))
	writeLine(t, fs, "recovered")
	require.NoError(t, fs.Flush())
	require.NoError(t, fs.Close())

	assert.Equal(t, "recovered\n", readFile(t, filepath.Join(dir, "app_2024-01-01-14.log")))
}

func TestRotatingFileSinkForceFlush(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now, WithForceFlush(true))
	require.NoError(t, err)
	defer fs.Close()

	writeLine(t, fs, "durable")

	// Visible on disk without an explicit Flush
	assert.Equal(t, "durable\n", readFile(t, fs.CurrentFileName()))

	fs.SetForceFlush(false)
	writeLine(t, fs, "buffered")
	assert.Equal(t, "durable\n", readFile(t, fs.CurrentFileName()))
}

func TestRotatingFileSinkFlushIdempotent(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)
	defer fs.Close()

	writeLine(t, fs, "once")
	require.NoError(t, fs.Flush())
	require.NoError(t, fs.Flush())
	require.NoError(t, fs.Flush())

	assert.Equal(t, "once\n", readFile(t, fs.CurrentFileName()))
}

func TestRotatingFileSinkClose(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now)
	require.NoError(t, err)

	path := fs.CurrentFileName()
	writeLine(t, fs, "final")
	require.NoError(t, fs.Close())

	// Close drains the buffer
	assert.Equal(t, "final\n", readFile(t, path))
	assert.Equal(t, "", fs.CurrentFileName())

	// Closing twice is harmless
	assert.NoError(t, fs.Close())
}

func TestRotatingFileSinkConstructionFailure(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(t.TempDir(), "missing", "app.log"), clock.Now)
	require.Error(t, err)
	assert.Nil(t, fs)
}

func TestNewHourlyFileSink(t *testing.T) {
	dir := t.TempDir()

	before := time.Now()
	fs, err := NewHourlyFileSink(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	defer fs.Close()
	after := time.Now()

	// Tolerate a boundary crossing between the two wall-clock reads
	candidates := []string{
		HourlySchedule{}.FileName(filepath.Join(dir, "app.log"), before),
		HourlySchedule{}.FileName(filepath.Join(dir, "app.log"), after),
	}
	assert.Contains(t, candidates, fs.CurrentFileName())
}

func TestNewDailyFileSink(t *testing.T) {
	dir := t.TempDir()

	before := time.Now()
	fs, err := NewDailyFileSink(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	defer fs.Close()
	after := time.Now()

	candidates := []string{
		DailySchedule{}.FileName(filepath.Join(dir, "app.log"), before),
		DailySchedule{}.FileName(filepath.Join(dir, "app.log"), after),
	}
	assert.Contains(t, candidates, fs.CurrentFileName())
}

func TestRotatingFileSinkSingleWriter(t *testing.T) {
	dir := t.TempDir()
	clock := newFakeClock(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))

	fs, err := newRotatingFileSink(filepath.Join(dir, "app.log"), clock.Now, WithSingleWriter())
	require.NoError(t, err)
	defer fs.Close()

	writeLine(t, fs, "solo")
	require.NoError(t, fs.Flush())
	assert.Equal(t, "solo\n", readFile(t, fs.CurrentFileName()))
}
