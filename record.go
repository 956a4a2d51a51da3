// FILE: record.go
package log

import (
	"time"
)

// Record is a single log event. A Record is built once per log call, handed
// to the formatter and then to every attached sink; it is never reused or
// pooled across calls, so no shared mutable Record crosses goroutines.
type Record struct {
	// Level is the severity the record was logged at.
	Level Level

	// LoggerName refers to the owning logger's name. Set once at
	// construction, never mutated.
	LoggerName string

	// Time is captured when the record is built, used for display and for
	// boundary comparisons by time-based sinks.
	Time time.Time

	// Raw holds the rendered message payload before formatting.
	Raw []byte

	// Formatted is filled by the formatter, empty until formatting runs.
	Formatted []byte

	// Sequence is a per-logger monotone counter, assigned at most once.
	// Zero when sequence tracking is disabled. Diagnostic only.
	Sequence uint64
}

// newRecord builds a record carrying the logger name and rendered payload
func newRecord(name string, level Level, raw []byte) *Record {
	return &Record{
		Level:      level,
		LoggerName: name,
		Time:       time.Now(),
		Raw:        raw,
	}
}
