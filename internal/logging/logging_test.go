package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "json")
	log.WithField("venue_id", 3).Debug("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.EqualValues(t, 3, entry["venue_id"])
}

func TestNewWithWriter_BadLevelFallsBackToInfo(t *testing.T) {
	log := NewWithWriter(&bytes.Buffer{}, "loud", "text")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
