package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		name  string
		debug bool
		level zapcore.Level
	}{
		{name: "info", debug: false, level: zapcore.InfoLevel},
		{name: "debug", debug: true, level: zapcore.DebugLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(true, tc.debug, "stderr")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !log.Core().Enabled(tc.level) {
				t.Fatalf("expected level %s to be enabled", tc.level)
			}
			if tc.level == zapcore.InfoLevel && log.Core().Enabled(zapcore.DebugLevel) {
				t.Fatalf("debug should be disabled")
			}
		})
	}
}
