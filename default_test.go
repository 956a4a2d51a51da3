// FILE: default_test.go
package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	require.NotNil(t, original)
	assert.Equal(t, "log", original.Name())

	sink := &recordingSink{}
	SetDefault(New("replaced", sink))
	assert.Equal(t, "replaced", Default().Name())

	SetLevel(LevelDebug)
	FlushOn(LevelError)
	assert.Equal(t, LevelDebug, Default().Level())
	assert.Equal(t, LevelError, Default().FlushLevel())

	Debug("d")
	Info("i")
	Warnf("w %d", 1)
	Error("e")
	assert.Equal(t, 4, sink.count())

	// Error level triggered one auto-flush; explicit Flush adds another
	Flush()
	assert.Equal(t, 2, sink.flushCount())

	// Nil is ignored
	SetDefault(nil)
	assert.Equal(t, "replaced", Default().Name())
}
