// FILE: default.go
package log

import (
	"sync/atomic"
)

// Package-level default logger, console at info level
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New("log", StdoutSink()))
}

// Default returns the package-level logger
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package-level logger
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Default package-level functions that delegate to the default logger

// SetLevel sets the default logger's severity threshold
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// FlushOn sets the default logger's flush threshold
func FlushOn(level Level) {
	Default().FlushOn(level)
}

// Flush flushes every sink of the default logger
func Flush() {
	Default().Flush()
}

// Trace logs a message at trace level
func Trace(args ...any) {
	Default().Trace(args...)
}

// Debug logs a message at debug level
func Debug(args ...any) {
	Default().Debug(args...)
}

// Info logs a message at info level
func Info(args ...any) {
	Default().Info(args...)
}

// Warn logs a message at warning level
func Warn(args ...any) {
	Default().Warn(args...)
}

// Error logs a message at error level
func Error(args ...any) {
	Default().Error(args...)
}

// Critical logs a message at critical level
func Critical(args ...any) {
	Default().Critical(args...)
}

// Tracef logs a printf-style message at trace level
func Tracef(format string, args ...any) {
	Default().Tracef(format, args...)
}

// Debugf logs a printf-style message at debug level
func Debugf(format string, args ...any) {
	Default().Debugf(format, args...)
}

// Infof logs a printf-style message at info level
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warnf logs a printf-style message at warning level
func Warnf(format string, args ...any) {
	Default().Warnf(format, args...)
}

// Errorf logs a printf-style message at error level
func Errorf(format string, args ...any) {
	Default().Errorf(format, args...)
}

// Criticalf logs a printf-style message at critical level
func Criticalf(format string, args ...any) {
	Default().Criticalf(format, args...)
}
