package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("WP_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("WP_DEBUG", "1")
	assert.True(t, DebugEnabled())
}

func TestDebugf(t *testing.T) {
	var debug, warn bytes.Buffer
	restore := SetOutput(&debug, &warn)
	defer restore()

	t.Setenv("WP_DEBUG", "")
	Debugf("hidden %s\n", "message")
	Debugln("hidden")
	assert.Empty(t, debug.String())

	t.Setenv("WP_DEBUG", "1")
	Debugf("loaded %d items\n", 3)
	Debugln("store ready")
	assert.Equal(t, "loaded 3 items\nstore ready\n", debug.String())
	assert.Empty(t, warn.String())
}

func TestWarnf(t *testing.T) {
	var debug, warn bytes.Buffer
	restore := SetOutput(&debug, &warn)
	defer restore()

	t.Setenv("WP_DEBUG", "")
	Warnf("could not save %s: %v\n", "habits", "disk full")
	assert.Equal(t, "warning: could not save habits: disk full\n", warn.String())
	assert.Empty(t, debug.String())
}

func TestEnableDebug(t *testing.T) {
	t.Setenv("WP_DEBUG", "")
	EnableDebug(true)
	defer EnableDebug(false)

	assert.True(t, DebugEnabled())
}
