package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, tt.level)
			if !logger.Enabled(context.Background(), tt.enabled) {
				t.Errorf("level %q: expected %v enabled", tt.level, tt.enabled)
			}
			if logger.Enabled(context.Background(), tt.muted) {
				t.Errorf("level %q: expected %v muted", tt.level, tt.muted)
			}
		})
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	if !strings.HasPrefix(buf.String(), "Usage: swm") {
		t.Fatalf("unexpected usage text %q", buf.String())
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRunConfig(t *testing.T) {
	good := writeConfig(t, "border_width: 2\n")
	bad := writeConfig(t, "border_width: -1\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"no subcommand", nil, 2, "", "Usage:"},
		{"unknown subcommand", []string{"reload"}, 2, "", "Unknown config subcommand"},
		{"validate ok", []string{"validate", "--path", good}, 0, "config: ok", ""},
		{"validate bad", []string{"validate", "--path", bad}, 1, "", "border_width"},
		{"print file", []string{"print", "--path", good}, 0, "border_width: 2", ""},
		{"print defaults", []string{"print", "--defaults"}, 0, "modifier: super", ""},
		{"explain from file", []string{"explain", "--path", good, "border_width"}, 0, "source: file:" + good + ":1:15", ""},
		{"explain default", []string{"explain", "--path", good, "modifier"}, 0, "source: default", ""},
		{"explain missing key", []string{"explain", "--path", good}, 2, "", "explain requires <key>"},
		{"explain unknown key", []string{"explain", "--path", good, "gap_size"}, 1, "", "unknown config key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := runConfig(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("expected exit %d, got %d (stderr %q)", tt.wantCode, code, stderr.String())
			}
			if tt.wantOut != "" && !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout %q does not contain %q", stdout.String(), tt.wantOut)
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}
