package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("NOTE_DEBUG", "")
	assert.False(t, DebugEnabled(), "empty NOTE_DEBUG disables debug")

	t.Setenv("NOTE_DEBUG", "1")
	assert.True(t, DebugEnabled())

	t.Setenv("NOTE_DEBUG", "true")
	assert.True(t, DebugEnabled())
}

func TestNew_Disabled(t *testing.T) {
	t.Setenv("NOTE_DEBUG", "")
	var buf bytes.Buffer

	log := New(&buf)
	log.Debugf("resolved %s", "/notes/a.md")
	log.Info().Msg("should not appear")

	assert.Empty(t, buf.String())
}

func TestNew_Enabled(t *testing.T) {
	t.Setenv("NOTE_DEBUG", "1")
	var buf bytes.Buffer

	log := New(&buf)
	log.Debugf("resolved %s", "/notes/a.md")

	assert.Contains(t, buf.String(), "resolved /notes/a.md")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "app=")
}

func TestNop(t *testing.T) {
	// Must not panic.
	Nop().Debugf("ignored %d", 1)
}
