// FILE: builder_test.go
package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderConfig(t *testing.T) {
	cfg, err := NewBuilder().
		Name("api").
		Level(LevelDebug).
		FlushOn(LevelWarn).
		Pattern("%l %v").
		TimeFormat("utc").
		EnableConsole(false).
		ConsoleTarget("stderr").
		EnableFile(true).
		Directory("/var/log/app").
		FileName("api.log").
		Rotation("daily").
		ForceFlush(true).
		EnableSequence(true).
		SingleWriter(true).
		Config()
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Name)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "warn", cfg.FlushOn)
	assert.Equal(t, "%l %v", cfg.Pattern)
	assert.Equal(t, "utc", cfg.TimeFormat)
	assert.False(t, cfg.EnableConsole)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	assert.True(t, cfg.EnableFile)
	assert.Equal(t, "/var/log/app", cfg.Directory)
	assert.Equal(t, "api.log", cfg.FileName)
	assert.Equal(t, "daily", cfg.Rotation)
	assert.True(t, cfg.ForceFlush)
	assert.True(t, cfg.EnableSequence)
	assert.True(t, cfg.SingleWriter)
}

func TestBuilderLevelString(t *testing.T) {
	cfg, err := NewBuilder().LevelString("error").Config()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Level)

	_, err = NewBuilder().LevelString("loud").Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestBuilderErrorSticks(t *testing.T) {
	b := NewBuilder().LevelString("loud").Name("api")

	_, err := b.Build()
	require.Error(t, err)

	_, err = b.Config()
	require.Error(t, err)
}

func TestBuilderConfigValidates(t *testing.T) {
	_, err := NewBuilder().Rotation("weekly").Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rotation")
}

func TestBuilderConfigClones(t *testing.T) {
	b := NewBuilder().Name("one")

	cfg, err := b.Config()
	require.NoError(t, err)
	cfg.Name = "changed"

	cfg2, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, "one", cfg2.Name)
}

func TestBuilderOverrides(t *testing.T) {
	cfg, err := NewBuilder().
		Name("api").
		Overrides("level=debug", "rotation=daily").
		Config()
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Name)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "daily", cfg.Rotation)

	_, err = NewBuilder().Overrides("volume=11").Config()
	require.Error(t, err)
}

func TestBuilderBuild(t *testing.T) {
	dir := t.TempDir()

	l, err := NewBuilder().
		Name("built").
		Level(LevelTrace).
		EnableConsole(false).
		EnableFile(true).
		Directory(dir).
		FileName("built.log").
		ForceFlush(true).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "built", l.Name())
	assert.Equal(t, LevelTrace, l.Level())
	require.Len(t, l.Sinks(), 1)

	fs := l.Sinks()[0].(*RotatingFileSink)
	defer fs.Close()

	l.Trace("trace is on")
	assert.Contains(t, readFile(t, fs.CurrentFileName()), "trace is on")
}
