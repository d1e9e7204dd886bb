package logger

import "testing"

func TestDefaultLoggerIsUsable(t *testing.T) {
	if Logger == nil {
		t.Fatal("Logger is nil before Initialize")
	}
	Logger.Infow("no-op logger accepts calls", "key", "value")
}

func TestInitialize(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	for _, tt := range []struct {
		json  bool
		level string
	}{
		{json: false, level: "debug"},
		{json: true, level: "warn"},
		{json: false, level: "not-a-level"},
	} {
		if err := Initialize(tt.json, tt.level); err != nil {
			t.Fatalf("Initialize(%v, %q) error = %v", tt.json, tt.level, err)
		}
		if Logger == nil {
			t.Fatalf("Logger is nil after Initialize(%v, %q)", tt.json, tt.level)
		}
	}
}
