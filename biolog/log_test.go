package biolog

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(log.New(&buf, "", 0))

	l.Stub("swi %#x not implemented", 0x27)
	assert.Contains(t, buf.String(), "[STUB]")
	assert.Contains(t, buf.String(), "swi 0x27 not implemented")

	buf.Reset()
	l.GameError("divide by zero: num=%d", 5)
	assert.Contains(t, buf.String(), "[GAME_ERROR]")

	buf.Reset()
	l.Warn("source %#x below working RAM", 0x100)
	assert.Contains(t, buf.String(), "[WARN]")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Stub("noop") })
}
