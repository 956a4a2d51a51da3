// FILE: config.go
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Basic settings
	Level   string `toml:"level"`    // "trace".."critical", "off"
	FlushOn string `toml:"flush_on"` // Minimum level that forces a flush
	Name    string `toml:"name"`     // Logger name

	// Formatting
	Pattern    string `toml:"pattern"`     // Pattern formatter spec, "%+" for full
	TimeFormat string `toml:"time_format"` // "local" or "utc"

	// Console output
	EnableConsole bool   `toml:"enable_console"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// File output
	EnableFile bool   `toml:"enable_file"`
	Directory  string `toml:"directory"`
	FileName   string `toml:"file_name"` // Base name, e.g. "app.log"
	Rotation   string `toml:"rotation"`  // "hourly" or "daily"
	ForceFlush bool   `toml:"force_flush"`

	// Dispatch behavior
	EnableSequence bool `toml:"enable_sequence"` // Per-record sequence numbering
	SingleWriter   bool `toml:"single_writer"`   // Non-locking file sink variant
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:   "info",
	FlushOn: "off",
	Name:    "log",

	Pattern:    FullPattern,
	TimeFormat: "local",

	EnableConsole: true,
	ConsoleTarget: "stdout",

	EnableFile: false,
	Directory:  "./logs",
	FileName:   "app.log",
	Rotation:   "hourly",
	ForceFlush: false,

	EnableSequence: false,
	SingleWriter:   false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("logger name cannot be empty")
	}

	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}

	if _, err := ParseLevel(c.FlushOn); err != nil {
		return err
	}

	if strings.TrimSpace(c.Pattern) == "" {
		return fmtErrorf("pattern cannot be empty")
	}

	if c.TimeFormat != "local" && c.TimeFormat != "utc" {
		return fmtErrorf("invalid time_format: '%s' (use local or utc)", c.TimeFormat)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if c.Rotation != "hourly" && c.Rotation != "daily" {
		return fmtErrorf("invalid rotation: '%s' (use hourly or daily)", c.Rotation)
	}

	if c.EnableFile && strings.TrimSpace(c.FileName) == "" {
		return fmtErrorf("file_name cannot be empty when file output is enabled")
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// timeType converts the configured time basis
func (c *Config) timeType() TimeType {
	if c.TimeFormat == "utc" {
		return TimeUTC
	}
	return TimeLocal
}

// NewLoggerFromConfig validates cfg and constructs a fully wired logger:
// a console sink and/or a rotating file sink per the configured outputs.
func NewLoggerFromConfig(cfg *Config) (*Logger, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var sinks []Sink

	if cfg.EnableConsole {
		if cfg.ConsoleTarget == "stderr" {
			sinks = append(sinks, StderrSink())
		} else {
			sinks = append(sinks, StdoutSink())
		}
	}

	if cfg.EnableFile {
		if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
			return nil, fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
		}

		opts := []FileSinkOption{WithForceFlush(cfg.ForceFlush)}
		if cfg.Rotation == "daily" {
			opts = append(opts, WithSchedule(DailySchedule{}))
		}
		if cfg.SingleWriter {
			opts = append(opts, WithSingleWriter())
		}

		fileSink, err := NewHourlyFileSink(filepath.Join(cfg.Directory, cfg.FileName), opts...)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fileSink)
	}

	l := New(cfg.Name, sinks...)

	level, _ := ParseLevel(cfg.Level)
	l.SetLevel(level)

	flushOn, _ := ParseLevel(cfg.FlushOn)
	l.FlushOn(flushOn)

	if cfg.Pattern != FullPattern || cfg.timeType() != TimeLocal {
		l.SetPattern(cfg.Pattern, cfg.timeType())
	}

	l.EnableSequence(cfg.EnableSequence)

	return l, nil
}
