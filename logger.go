// FILE: logger.go
package log

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// Rate limit of the default error handler, in wall-clock seconds
const defaultErrIntervalSec = 60

// defaultEOL terminates every formatted line and diagnostic
const defaultEOL = "\n"

// ErrorHandler receives a descriptive message when formatting or a sink
// fails during dispatch. It must not panic; the logging call has already
// absorbed the original fault by the time the handler runs.
type ErrorHandler func(msg string)

// formatterBox gives atomic.Value a single concrete type to store,
// regardless of the underlying Formatter implementation.
type formatterBox struct{ f Formatter }

// Logger dispatches records to an ordered set of shared sinks.
//
// The severity and flush thresholds are atomic and lock-free on the log
// path; they may be changed from any goroutine at any time, and an
// in-flight call may observe either the old or the new value. The sink
// list is fixed at construction. Swapping the formatter is memory-safe but
// carries no transactional guarantee with concurrent log calls.
type Logger struct {
	name  string
	sinks []Sink

	level      atomic.Int32
	flushLevel atomic.Int32

	formatter  atomic.Value // stores formatterBox
	errHandler atomic.Value // stores ErrorHandler

	lastErrTime atomic.Int64 // unix seconds, default handler throttle
	seq         atomic.Uint64
	seqEnabled  atomic.Bool

	errOutput io.Writer // fallback destination of the default handler
}

// New creates a logger with the given name and sinks, the default full
// pattern formatter, info threshold, and flush-on-off (never auto-flush).
func New(name string, sinks ...Sink) *Logger {
	l := &Logger{
		name:      name,
		sinks:     append([]Sink(nil), sinks...),
		errOutput: os.Stderr,
	}
	l.level.Store(int32(LevelInfo))
	l.flushLevel.Store(int32(LevelOff))
	l.formatter.Store(formatterBox{NewPatternFormatter(FullPattern, TimeLocal)})
	l.errHandler.Store(ErrorHandler(l.defaultErrorHandler))
	return l
}

// Name returns the logger's immutable name
func (l *Logger) Name() string {
	return l.name
}

// SetLevel sets the severity threshold, callable from any goroutine
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Level returns the current severity threshold
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// ShouldLog reports whether a record at the given level passes the gate
func (l *Logger) ShouldLog(level Level) bool {
	return level >= Level(l.level.Load())
}

// FlushOn sets the minimum severity that forces a flush of every sink
// after dispatch
func (l *Logger) FlushOn(level Level) {
	l.flushLevel.Store(int32(level))
}

// FlushLevel returns the current flush threshold
func (l *Logger) FlushLevel() Level {
	return Level(l.flushLevel.Load())
}

// SetFormatter swaps the formatting strategy
func (l *Logger) SetFormatter(f Formatter) {
	l.formatter.Store(formatterBox{f})
}

// SetPattern installs a pattern formatter built from the given pattern and
// time basis
func (l *Logger) SetPattern(pattern string, timeType TimeType) {
	l.formatter.Store(formatterBox{NewPatternFormatter(pattern, timeType)})
}

// SetErrorHandler replaces the failure callback
func (l *Logger) SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = l.defaultErrorHandler
	}
	l.errHandler.Store(h)
}

// EnableSequence turns per-record sequence numbering on or off
func (l *Logger) EnableSequence(enable bool) {
	l.seqEnabled.Store(enable)
}

// Sinks returns the attached sinks in attachment order. The returned slice
// is a copy; the logger's own list never changes after construction.
func (l *Logger) Sinks() []Sink {
	return append([]Sink(nil), l.sinks...)
}

// Flush flushes every sink in attachment order. Flushing twice in a row is
// harmless. Sink flush failures go to the error handler.
func (l *Logger) Flush() {
	for _, s := range l.sinks {
		if err := s.Flush(); err != nil {
			l.errorHandler()(err.Error())
		}
	}
}

// Log renders args space-separated and dispatches at the given level
func (l *Logger) Log(level Level, args ...any) {
	if !l.ShouldLog(level) {
		return
	}
	l.dispatch(level, renderPayload(nil, args))
}

// Logf renders a printf-style payload and dispatches at the given level
func (l *Logger) Logf(level Level, format string, args ...any) {
	if !l.ShouldLog(level) {
		return
	}
	l.dispatch(level, fmt.Appendf(nil, format, args...))
}

// Trace logs a message at trace level
func (l *Logger) Trace(args ...any) { l.Log(LevelTrace, args...) }

// Debug logs a message at debug level
func (l *Logger) Debug(args ...any) { l.Log(LevelDebug, args...) }

// Info logs a message at info level
func (l *Logger) Info(args ...any) { l.Log(LevelInfo, args...) }

// Warn logs a message at warning level
func (l *Logger) Warn(args ...any) { l.Log(LevelWarn, args...) }

// Error logs a message at error level
func (l *Logger) Error(args ...any) { l.Log(LevelError, args...) }

// Critical logs a message at critical level
func (l *Logger) Critical(args ...any) { l.Log(LevelCritical, args...) }

// Tracef logs a printf-style message at trace level
func (l *Logger) Tracef(format string, args ...any) { l.Logf(LevelTrace, format, args...) }

// Debugf logs a printf-style message at debug level
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }

// Infof logs a printf-style message at info level
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Warnf logs a printf-style message at warning level
func (l *Logger) Warnf(format string, args ...any) { l.Logf(LevelWarn, format, args...) }

// Errorf logs a printf-style message at error level
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Criticalf logs a printf-style message at critical level
func (l *Logger) Criticalf(format string, args ...any) { l.Logf(LevelCritical, format, args...) }

// dispatch runs the record through formatter and sinks on the caller's
// goroutine. Formatter and sink errors are absorbed and forwarded to the
// error handler; a panic is forwarded and then re-raised to the caller.
func (l *Logger) dispatch(level Level, raw []byte) {
	defer func() {
		if p := recover(); p != nil {
			l.errorHandler()(fmt.Sprintf("unknown panic in logger %s: %v", l.name, p))
			panic(p)
		}
	}()

	r := newRecord(l.name, level, raw)
	if l.seqEnabled.Load() {
		r.Sequence = l.seq.Add(1)
	}

	f := l.formatter.Load().(formatterBox).f
	if err := f.Format(r); err != nil {
		l.errorHandler()(err.Error())
		return
	}

	for _, s := range l.sinks {
		if !s.ShouldLog(level) {
			continue
		}
		// A failing sink must not block delivery to the ones after it
		if err := s.Log(r); err != nil {
			l.errorHandler()(err.Error())
		}
	}

	if l.shouldFlushOn(level) {
		l.Flush()
	}
}

// shouldFlushOn applies the flush predicate: at or above the flush
// threshold and not the off pseudo-level
func (l *Logger) shouldFlushOn(level Level) bool {
	return level >= Level(l.flushLevel.Load()) && level != LevelOff
}

// errorHandler returns the current failure callback
func (l *Logger) errorHandler() ErrorHandler {
	return l.errHandler.Load().(ErrorHandler)
}

// defaultErrorHandler writes a diagnostic line to the fallback error
// destination, at most once per 60-second window
func (l *Logger) defaultErrorHandler(msg string) {
	now := time.Now()
	last := l.lastErrTime.Load()
	if now.Unix()-last < defaultErrIntervalSec {
		return
	}
	if !l.lastErrTime.CompareAndSwap(last, now.Unix()) {
		return
	}
	fmt.Fprintf(l.errOutput, "[*** LOG ERROR ***] [%s] [%s] [%s]%s",
		l.name, msg, now.Format("2006-01-02 15:04:05"), defaultEOL)
}
