// FILE: sink.go
package log

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Sink is a delivery target for formatted records. A sink instance
// serializes its own Log/Flush operations internally; the same sink value
// may be attached to any number of loggers, and sinks backed by the same
// physical destination must share one instance to get that guarantee.
type Sink interface {
	// ShouldLog reports whether the sink accepts records at the given level.
	ShouldLog(level Level) bool
	// Log delivers one formatted record.
	Log(r *Record) error
	// Flush forces buffered output to the destination.
	Flush() error
}

// leveledSink carries the per-sink severity threshold shared by the
// concrete sink types. The zero value accepts everything.
type leveledSink struct {
	level atomic.Int32
}

// ShouldLog compares against the sink's own threshold
func (s *leveledSink) ShouldLog(level Level) bool {
	return level >= Level(s.level.Load())
}

// SetLevel sets the sink threshold, callable concurrently with logging
func (s *leveledSink) SetLevel(level Level) {
	s.level.Store(int32(level))
}

// Level returns the sink threshold
func (s *leveledSink) Level() Level {
	return Level(s.level.Load())
}

// nopLocker is the lock used by single-writer sink variants, keeping one
// code path for the locking and non-locking flavors.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// ConsoleSink writes formatted records to an io.Writer under a mutex.
type ConsoleSink struct {
	leveledSink
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a sink over the given writer
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

// Log writes the record's formatted payload
func (s *ConsoleSink) Log(r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(r.Formatted); err != nil {
		return fmtErrorf("console write failed: %w", err)
	}
	return nil
}

// Flush is a no-op; console writers are unbuffered here
func (s *ConsoleSink) Flush() error {
	return nil
}

// Shared process-wide console sinks. Sharing one instance keeps writes to
// the same stream serialized across loggers.
var (
	stdoutSinkOnce sync.Once
	stdoutSink     *ConsoleSink
	stderrSinkOnce sync.Once
	stderrSink     *ConsoleSink
)

// StdoutSink returns the shared stdout sink
func StdoutSink() *ConsoleSink {
	stdoutSinkOnce.Do(func() {
		stdoutSink = NewConsoleSink(os.Stdout)
	})
	return stdoutSink
}

// StderrSink returns the shared stderr sink
func StderrSink() *ConsoleSink {
	stderrSinkOnce.Do(func() {
		stderrSink = NewConsoleSink(os.Stderr)
	})
	return stderrSink
}
