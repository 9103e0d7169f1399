package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "level.log")
			cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("init: %v", err)
			}

			Debug("debug message")
			Info("info message", zap.String("path", "media/models/plane.gltf"))
			Warn("warn message")
			Error("error message")
			Sync()

			data, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			content := string(data)

			for _, lvl := range tt.expected {
				if !strings.Contains(content, lvl) {
					t.Errorf("level %s: expected %s entries in log", tt.level, lvl)
				}
			}
			for _, lvl := range tt.excluded {
				if strings.Contains(content, lvl) {
					t.Errorf("level %s: did not expect %s entries in log", tt.level, lvl)
				}
			}
		})
	}
}

func TestFieldsWritten(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fields.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	Info("texture loaded", zap.String("path", "media/textures/brick.png"), zap.Uint32("id", 7))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	for _, want := range []string{"texture loaded", "media/textures/brick.png", `"id": 7`} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("skyview.log")
	if cfg.Path != "skyview.log" {
		t.Errorf("expected path skyview.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		t.Errorf("expected positive rotation limits, got %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected compression enabled by default")
	}
}

func TestCallerPointsAtCallSite(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	if err := InitWithFileConfig("debug", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	Info("from helper")
	Sugar.Debugf("from sugar %d", 1)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), data)
	}
	for _, line := range lines {
		if !strings.Contains(line, "logger/logger_test.go:") {
			t.Errorf("caller should be the test file: %s", line)
		}
	}
}

func TestFatalUsesFatalLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fatal.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	Log = Log.WithOptions(zap.WithFatalHook(zapcore.WriteThenPanic))

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected Fatal to stop the caller")
			}
		}()
		Fatal("cannot continue", zap.String("reason", "test"))
	}()
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "FATAL") || !strings.Contains(string(data), "cannot continue") {
		t.Errorf("fatal entry missing:\n%s", data)
	}
}
