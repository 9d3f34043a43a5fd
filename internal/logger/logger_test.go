package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, log.InfoLevel, ParseLevel("verbose"))
}

func TestComponentLoggersCarryFields(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter("info", &buf)
	t.Cleanup(func() { Logger = nil })

	Storage("file").Info("snapshot written", "path", "spring")

	out := buf.String()
	assert.Contains(t, out, "snapshot written")
	assert.Contains(t, out, "backend=file")
	assert.Contains(t, out, "path=spring")
}
