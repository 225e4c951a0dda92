package utils

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	origOut, origFlags, origLevel := log.Writer(), log.Flags(), CurrentLevel
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(origOut)
		log.SetFlags(origFlags)
		CurrentLevel = origLevel
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLog(t)
	CurrentLevel = LevelWarn

	Debug("hidden debug")
	Info("hidden info")
	Warn("shown %s", "warn")
	Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the current level were written: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "shown warn") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR]") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestRaylibLogCallback(t *testing.T) {
	buf := captureLog(t)
	CurrentLevel = LevelInfo

	RaylibLogCallback(3, "INFO: texture loaded")
	if buf.Len() != 0 {
		t.Errorf("raylib info should be hidden at info level without ShowRaylibInfo, got %q", buf.String())
	}

	RaylibLogCallback(4, "WARNING: shader fallback")
	if !strings.Contains(buf.String(), "[RAYLIB]") || !strings.Contains(buf.String(), "shader fallback") {
		t.Errorf("raylib warning not forwarded: %q", buf.String())
	}
}

func TestSlogFollowsCurrentLevel(t *testing.T) {
	captureLog(t)

	CurrentLevel = LevelWarn
	l := Slog()
	if l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Slog() enabled info while CurrentLevel is warn")
	}
	if !l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Slog() disabled warn while CurrentLevel is warn")
	}
}
