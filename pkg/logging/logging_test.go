package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseLevel(tc.level), "level %q", tc.level)
	}
}

func TestNewWithWriterWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info", false)

	logger.Debug().Msg("hidden")
	logger.Info().Str("prefix", "Hall").Msg("enumerating")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event), "only the info event should be written")
	assert.Equal(t, "enumerating", event["message"])
	assert.Equal(t, "Hall", event["prefix"])
	assert.Equal(t, "info", event["level"])
}

func TestNewWithWriterPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "debug", true)

	logger.Debug().Msg("pretty output")
	assert.Contains(t, buf.String(), "pretty output")
	assert.NotContains(t, buf.String(), `"message"`)
}
