package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realtime.log")
	l := NewIsolatedLogger(path)

	l.Info("HUB", "client subscribed", map[string]interface{}{"topic": "inbox"})
	l.Debug("HUB", "below file level", nil)
	require.NoError(t, l.Sync())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}

	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "client subscribed", lines[0]["message"])
	assert.Equal(t, "HUB", lines[0]["module"])
	assert.Equal(t, "inbox", lines[0]["details"].(map[string]interface{})["topic"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("X", "ignored", map[string]interface{}{"error": "boom"})
	assert.NotNil(t, l.Zap())
}
