// FILE: pattern.go
package log

import (
	"time"
)

// Formatter turns a record into its final display bytes, appending into
// r.Formatted. Implementations must be deterministic given the record's
// fields and must not mutate Level, Raw, or Time.
type Formatter interface {
	Format(r *Record) error
}

// TimeType selects the time basis used by the pattern formatter.
type TimeType int

const (
	TimeLocal TimeType = iota
	TimeUTC
)

// FullPattern is the default pattern: timestamp, logger name, level, message.
const FullPattern = "%+"

// fullPatternExpansion is what %+ compiles to.
const fullPatternExpansion = "[%Y-%m-%d %H:%M:%S.%e] [%n] [%l] %v"

// appender writes one pattern token into buf and returns the extended slice
type appender func(buf []byte, r *Record, t time.Time) []byte

// PatternFormatter is the default Formatter. A pattern string is compiled
// once into a list of appenders; Format walks the list and terminates the
// line with eol.
type PatternFormatter struct {
	appenders []appender
	timeType  TimeType
}

// NewPatternFormatter compiles a pattern. Supported tokens:
// %Y %m %d %H %M %S %e (date/time parts), %l level, %L short level,
// %n logger name, %v message payload, %% literal percent,
// %+ the full default pattern. Unknown tokens pass through literally.
func NewPatternFormatter(pattern string, timeType TimeType) *PatternFormatter {
	f := &PatternFormatter{timeType: timeType}
	f.compile(pattern)
	return f
}

// Format renders the record through the compiled pattern
func (f *PatternFormatter) Format(r *Record) error {
	t := r.Time
	if f.timeType == TimeUTC {
		t = t.UTC()
	} else {
		t = t.Local()
	}
	for _, a := range f.appenders {
		r.Formatted = a(r.Formatted, r, t)
	}
	r.Formatted = append(r.Formatted, defaultEOL...)
	return nil
}

func (f *PatternFormatter) compile(pattern string) {
	var literal []byte
	flushLiteral := func() {
		if len(literal) == 0 {
			return
		}
		lit := string(literal)
		literal = nil
		f.appenders = append(f.appenders, func(buf []byte, _ *Record, _ time.Time) []byte {
			return append(buf, lit...)
		})
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			literal = append(literal, c)
			continue
		}
		i++
		flag := pattern[i]
		if flag == '+' {
			flushLiteral()
			f.compile(fullPatternExpansion)
			continue
		}
		a := tokenAppender(flag)
		if a == nil {
			// Unrecognized flag is kept as literal text
			literal = append(literal, '%', flag)
			continue
		}
		flushLiteral()
		f.appenders = append(f.appenders, a)
	}
	flushLiteral()
}

func tokenAppender(flag byte) appender {
	switch flag {
	case 'Y':
		return func(buf []byte, _ *Record, t time.Time) []byte {
			return appendIntPad4(buf, t.Year())
		}
	case 'm':
		return func(buf []byte, _ *Record, t time.Time) []byte {
			return appendIntPad2(buf, int(t.Month()))
		}
	case 'd':
		return func(buf []byte, _ *Record, t time.Time) []byte {
			return appendIntPad2(buf, t.Day())
		}
	case 'H':
		return func(buf []byte, _ *Record, t time.Time) []byte {
			return appendIntPad2(buf, t.Hour())
		}
	case 'M':
		return func(buf []byte, _ *Record, t time.Time) []byte {
			return appendIntPad2(buf, t.Minute())
		}
	case 'S':
		return func(buf []byte, _ *Record, t time.Time) []byte {
			return appendIntPad2(buf, t.Second())
		}
	case 'e':
		return func(buf []byte, _ *Record, t time.Time) []byte {
			return appendIntPad3(buf, t.Nanosecond()/1e6)
		}
	case 'l':
		return func(buf []byte, r *Record, _ time.Time) []byte {
			return append(buf, r.Level.String()...)
		}
	case 'L':
		return func(buf []byte, r *Record, _ time.Time) []byte {
			return append(buf, r.Level.Short()...)
		}
	case 'n':
		return func(buf []byte, r *Record, _ time.Time) []byte {
			return append(buf, r.LoggerName...)
		}
	case 'v':
		return func(buf []byte, r *Record, _ time.Time) []byte {
			return append(buf, r.Raw...)
		}
	case '%':
		return func(buf []byte, _ *Record, _ time.Time) []byte {
			return append(buf, '%')
		}
	}
	return nil
}

func appendIntPad2(buf []byte, n int) []byte {
	return append(buf, byte('0'+n/10%10), byte('0'+n%10))
}

func appendIntPad3(buf []byte, n int) []byte {
	return append(buf, byte('0'+n/100%10), byte('0'+n/10%10), byte('0'+n%10))
}

func appendIntPad4(buf []byte, n int) []byte {
	return append(buf,
		byte('0'+n/1000%10), byte('0'+n/100%10), byte('0'+n/10%10), byte('0'+n%10))
}
