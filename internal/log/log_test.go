package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	if err := Init(false); err != nil {
		t.Fatalf("Init(false) returned %v", err)
	}
	if GetSugaredLogger().Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level enabled outside debug mode")
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) returned %v", err)
	}
	if !GetSugaredLogger().Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level disabled in debug mode")
	}

	Debugw("test message", "key", "value")
	Sync()
}

func TestFallbackLogger(t *testing.T) {
	log, baseLogger = nil, nil
	if GetSugaredLogger() == nil {
		t.Fatal("GetSugaredLogger returned nil before Init")
	}
	Warnw("dropped", "key", "value")
}
