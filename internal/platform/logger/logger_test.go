package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, lvl Level, format Format) *stdLogger {
	l := New(Options{Level: lvl, Format: format, App: "virtual-pet", Output: buf}).(*stdLogger)
	l.sink.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return l
}

func TestLogger_TextIsSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Info, FormatText)

	l.Debug("hidden", nil)
	l.With(Fields{"pet_id": "p1"}).Info("action applied", Fields{"kind": "treat"})

	want := "app=virtual-pet kind=treat level=info msg=action applied pet_id=p1 ts=2026-01-01T00:00:00Z"
	assert.Equal(t, want, strings.TrimSpace(buf.String()))
}

func TestLogger_JSONStringifiesErrors(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, Debug, FormatJSON)

	l.Warn("swallowed", Fields{"error": errors.New("autoplay denied")})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "autoplay denied", entry["error"])
	assert.Equal(t, "warn", entry["level"])
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Warn, ParseLevel("WARNING"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))

	assert.Equal(t, FormatJSON, ParseFormat(" JSON "))
	assert.Equal(t, FormatText, ParseFormat("xml"))
}
