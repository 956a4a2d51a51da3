// FILE: builder.go
package log

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a fully wired Logger with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewLoggerFromConfig(b.cfg)
}

// Config returns the accumulated configuration without building a logger.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg.Clone(), nil
}

// Level sets the severity threshold.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level.String()
	return b
}

// LevelString sets the severity threshold from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// FlushOn sets the flush threshold.
func (b *Builder) FlushOn(level Level) *Builder {
	b.cfg.FlushOn = level.String()
	return b
}

// Name sets the logger name.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Pattern sets the format pattern.
func (b *Builder) Pattern(pattern string) *Builder {
	b.cfg.Pattern = pattern
	return b
}

// TimeFormat sets the pattern time basis ("local" or "utc").
func (b *Builder) TimeFormat(tf string) *Builder {
	b.cfg.TimeFormat = tf
	return b
}

// EnableConsole enables or disables the console sink.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for the console sink.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// EnableFile enables or disables the rotating file sink.
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// FileName sets the base file name the rotation schedule derives from.
func (b *Builder) FileName(name string) *Builder {
	b.cfg.FileName = name
	return b
}

// Rotation selects the rotation cadence ("hourly" or "daily").
func (b *Builder) Rotation(rotation string) *Builder {
	b.cfg.Rotation = rotation
	return b
}

// ForceFlush makes the file sink flush after every write.
func (b *Builder) ForceFlush(force bool) *Builder {
	b.cfg.ForceFlush = force
	return b
}

// EnableSequence turns per-record sequence numbering on.
func (b *Builder) EnableSequence(enable bool) *Builder {
	b.cfg.EnableSequence = enable
	return b
}

// SingleWriter selects the non-locking file sink variant.
func (b *Builder) SingleWriter(single bool) *Builder {
	b.cfg.SingleWriter = single
	return b
}

// Overrides applies "key=value" override strings on top of the current
// configuration.
func (b *Builder) Overrides(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	cfg, err := b.cfg.ApplyOverrides(overrides...)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg = cfg
	return b
}

// Example usage:
// logger, err := log.NewBuilder().
//
//	Name("api").
//	LevelString("debug").
//	FlushOn(log.LevelWarn).
//	EnableFile(true).
//	Directory("/var/log/app").
//	Rotation("hourly").
//	Build()
//
// if err == nil {
//
//	 logger.Info("Logger initialized successfully")
//
// }
