// FILE: override.go
package log

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverrides applies string key-value overrides to a cloned copy of the
// configuration and returns it. Each override should be in the format
// "key=value".
//
// Example:
//
//	cfg, err := log.DefaultConfig().ApplyOverrides(
//	    "directory=/var/log/app",
//	    "level=debug",
//	    "rotation=daily",
//	)
func (c *Config) ApplyOverrides(overrides ...string) (*Config, error) {
	cfg := c.Clone()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, combineConfigErrors(errs)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("log: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove "log: " prefix from individual errors to avoid duplication
		if strings.HasPrefix(errMsg, "log: ") {
			errMsg = errMsg[5:]
		}
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Basic settings
	case "level":
		if _, err := ParseLevel(value); err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.Level = value
	case "flush_on":
		if _, err := ParseLevel(value); err != nil {
			return fmtErrorf("invalid flush_on value '%s': %w", value, err)
		}
		cfg.FlushOn = value
	case "name":
		cfg.Name = value

	// Formatting
	case "pattern":
		cfg.Pattern = value
	case "time_format":
		cfg.TimeFormat = value

	// Console output
	case "enable_console":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_console '%s': %w", value, err)
		}
		cfg.EnableConsole = boolVal
	case "console_target":
		cfg.ConsoleTarget = value

	// File output
	case "enable_file":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_file '%s': %w", value, err)
		}
		cfg.EnableFile = boolVal
	case "directory":
		cfg.Directory = value
	case "file_name":
		cfg.FileName = value
	case "rotation":
		cfg.Rotation = value
	case "force_flush":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for force_flush '%s': %w", value, err)
		}
		cfg.ForceFlush = boolVal

	// Dispatch behavior
	case "enable_sequence":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_sequence '%s': %w", value, err)
		}
		cfg.EnableSequence = boolVal
	case "single_writer":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for single_writer '%s': %w", value, err)
		}
		cfg.SingleWriter = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
