package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthcoach/wealthcoach/internal/calculation"
)

// The engine accepts a logrus logger directly.
var _ calculation.Logger = (*logrus.Logger)(nil)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "debug", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("plan", "Base plan").Info("evaluated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "evaluated", entry["msg"])
	assert.Equal(t, "Base plan", entry["plan"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "warn", "TEXT")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	logger, err := NewWithOutput(&bytes.Buffer{}, "chatty", "text")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := NewWithOutput(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
