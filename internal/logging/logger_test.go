package logging

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelFromName(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":    zapcore.DebugLevel,
		"info":     zapcore.InfoLevel,
		"warning":  zapcore.WarnLevel,
		"error":    zapcore.ErrorLevel,
		"critical": zapcore.DPanicLevel,
		"garbage":  zapcore.InfoLevel,
	}
	for name, want := range cases {
		if got := levelFromName(name); got != want {
			t.Errorf("levelFromName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewBuildsLoggerAndClosesCleanly(t *testing.T) {
	dir := t.TempDir()
	logger, closeFn, err := New("info", filepath.Join(dir, "itx.log"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer closeFn()

	if logger == nil {
		t.Fatal("expected a non-nil logger")
	}
	logger.Info("test message")
}

func TestWithStageTagsFields(t *testing.T) {
	dir := t.TempDir()
	logger, closeFn, err := New("info", filepath.Join(dir, "itx.log"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer closeFn()

	staged := WithStage(logger, "clean", "client-1", "file-1")
	if staged == nil {
		t.Fatal("expected a non-nil staged logger")
	}
	staged.Info("staged message")
}
