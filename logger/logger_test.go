package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name          string
		level         Level
		logFunc       func(Logger, string)
		expectedInLog bool
	}{
		{
			name:          "debug message when level is debug",
			level:         LevelDebug,
			logFunc:       func(l Logger, msg string) { l.Debug(msg) },
			expectedInLog: true,
		},
		{
			name:          "debug message when level is info",
			level:         LevelInfo,
			logFunc:       func(l Logger, msg string) { l.Debug(msg) },
			expectedInLog: false,
		},
		{
			name:          "warn message when level is warn",
			level:         LevelWarn,
			logFunc:       func(l Logger, msg string) { l.Warn(msg) },
			expectedInLog: true,
		},
		{
			name:          "info message when level is error",
			level:         LevelError,
			logFunc:       func(l Logger, msg string) { l.Info(msg) },
			expectedInLog: false,
		},
		{
			name:          "error message when level is error",
			level:         LevelError,
			logFunc:       func(l Logger, msg string) { l.Error(msg) },
			expectedInLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.logFunc(NewLogger(tt.level, buf), "attempt rejected")

			assert.Equal(t, tt.expectedInLog, bytes.Contains(buf.Bytes(), []byte("attempt rejected")))
		})
	}
}

func TestLogger_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(LevelDebug, buf).(*standardLogger)
	l.sink.now = func() time.Time { return time.Date(2025, 10, 7, 9, 30, 0, 0, time.UTC) }

	l.Debug("input rejected", F("attempt", 2), F("reason", "too short"))

	assert.Equal(t, "2025-10-07 09:30:00 [DEBUG] input rejected | attempt=2 reason=too short\n", buf.String())
}

func TestLogger_WithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewLogger(LevelInfo, buf)

	child := base.WithFields(F("prompt", "email"))
	child.Info("asked", F("attempt", 1))

	assert.Contains(t, buf.String(), "prompt=email attempt=1")

	buf.Reset()
	base.Info("plain")
	assert.NotContains(t, buf.String(), "prompt=email", "parent must not inherit child fields")
}

func TestLogger_SetLevelSharedWithChildren(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewLogger(LevelError, buf)
	child := base.WithFields(F("k", "v"))

	child.Info("hidden")
	assert.Zero(t, buf.Len())

	base.SetLevel(LevelInfo)
	child.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_SilentMode(t *testing.T) {
	l := NewSilentLogger()
	l.SetLevel(LevelSilent)

	// Nothing to observe beyond not panicking on io.Discard.
	l.Debug("debug msg")
	l.Error("error msg")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelSilent, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "SILENT", LevelSilent.String())
	assert.Equal(t, "UNKNOWN", Level(999).String())
}
