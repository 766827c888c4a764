package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_JSONCarriesComponentAndSession(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "debug", JSON: true, Writer: &buf})

	log.Info("TitleBar", "maximize requested", map[string]interface{}{"maximized": true})
	log.Error("Backend", errors.New("no window"), nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "TitleBar", entries[0]["component"])
	assert.Equal(t, "maximize requested", entries[0]["message"])
	assert.Equal(t, true, entries[0]["maximized"])
	assert.NotEmpty(t, entries[0]["session"])
	assert.Equal(t, entries[0]["session"], entries[1]["session"])

	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "no window", entries[1]["error"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", JSON: true, Writer: &buf})

	log.Debug("c", "hidden", nil)
	log.Info("c", "hidden", nil)
	log.Warning("c", "shown", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestNew_ConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Writer: &buf})

	log.Info("Application", "starting", nil)
	assert.Contains(t, buf.String(), "starting")
	assert.Contains(t, buf.String(), "Application")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}
