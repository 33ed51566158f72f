package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developia-II/moderated-translator/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.Log{Level: "debug", Format: "json"})

	l.Debug("moderation blocked", "categories", "hate")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "moderation blocked", entry["msg"])
	assert.Equal(t, "hate", entry["categories"])
}

func TestNewUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.Log{Level: "verbose", Format: "text"})

	assert.Equal(t, log.InfoLevel, l.GetLevel())
	l.Debug("hidden")
	assert.Empty(t, buf.String())
}
