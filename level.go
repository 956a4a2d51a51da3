// FILE: level.go
package log

import (
	"fmt"
	"strings"
)

// Level is the ordered severity of a log record.
// Thresholds compare with >= so a higher level always passes a lower gate.
type Level int32

// Severity levels, lowest to highest
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelNames = [...]string{
	LevelTrace:    "trace",
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarn:     "warn",
	LevelError:    "error",
	LevelCritical: "critical",
	LevelOff:      "off",
}

var levelShortNames = [...]string{
	LevelTrace:    "T",
	LevelDebug:    "D",
	LevelInfo:     "I",
	LevelWarn:     "W",
	LevelError:    "E",
	LevelCritical: "C",
	LevelOff:      "O",
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if l < LevelTrace || l > LevelOff {
		return fmt.Sprintf("level(%d)", int32(l))
	}
	return levelNames[l]
}

// Short returns the single-letter form of the level
func (l Level) Short() string {
	if l < LevelTrace || l > LevelOff {
		return "?"
	}
	return levelShortNames[l]
}

// ParseLevel converts a level name to its Level constant
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	case "off":
		return LevelOff, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, critical, off)", levelStr)
	}
}
