// FILE: compat/fiber.go
package compat

import (
	"fmt"
	"os"

	"github.com/fernlog/log"
)

// FiberAdapter wraps a log.Logger to implement Fiber's CommonLogger interface
type FiberAdapter struct {
	logger       *log.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(logger *log.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior
		},
		panicHandler: func(msg string) {
			panic(msg) // Default behavior
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// Trace logs at trace level
func (a *FiberAdapter) Trace(v ...any) {
	a.logger.Trace(v...)
}

// Debug logs at debug level
func (a *FiberAdapter) Debug(v ...any) {
	a.logger.Debug(v...)
}

// Info logs at info level
func (a *FiberAdapter) Info(v ...any) {
	a.logger.Info(v...)
}

// Warn logs at warn level
func (a *FiberAdapter) Warn(v ...any) {
	a.logger.Warn(v...)
}

// Error logs at error level
func (a *FiberAdapter) Error(v ...any) {
	a.logger.Error(v...)
}

// Fatal logs at critical level and triggers the fatal handler
func (a *FiberAdapter) Fatal(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Critical(msg)
	a.logger.Flush()
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panic logs at critical level and triggers the panic handler
func (a *FiberAdapter) Panic(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Critical(msg)
	a.logger.Flush()
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// Tracef logs a printf-style message at trace level
func (a *FiberAdapter) Tracef(format string, args ...any) {
	a.logger.Tracef(format, args...)
}

// Debugf logs a printf-style message at debug level
func (a *FiberAdapter) Debugf(format string, args ...any) {
	a.logger.Debugf(format, args...)
}

// Infof logs a printf-style message at info level
func (a *FiberAdapter) Infof(format string, args ...any) {
	a.logger.Infof(format, args...)
}

// Warnf logs a printf-style message at warn level
func (a *FiberAdapter) Warnf(format string, args ...any) {
	a.logger.Warnf(format, args...)
}

// Errorf logs a printf-style message at error level
func (a *FiberAdapter) Errorf(format string, args ...any) {
	a.logger.Errorf(format, args...)
}

// Fatalf logs a printf-style message at critical level and triggers the fatal handler
func (a *FiberAdapter) Fatalf(format string, args ...any) {
	a.Fatal(fmt.Sprintf(format, args...))
}

// Panicf logs a printf-style message at critical level and triggers the panic handler
func (a *FiberAdapter) Panicf(format string, args ...any) {
	a.Panic(fmt.Sprintf(format, args...))
}
