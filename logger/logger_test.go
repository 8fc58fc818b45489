package logger

import (
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format json, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected default output stderr, got %s", cfg.Output)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid debug json", Config{Level: "debug", Format: "json", Output: "stderr"}, false},
		{"valid console", Config{Level: "info", Format: "console", Output: "stdout"}, false},
		{"bad level", Config{Level: "verbose", Format: "json", Output: "stderr"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	l := New(Config{Level: "info"})
	if l == nil {
		t.Fatal("expected logger")
	}
	// Must not panic when logging with fields.
	l.Info("hello", Fields("k", "v"))
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Debug("discarded")
	l.Error("discarded", RequestFields("GET", "/charges", 500, time.Second))
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected map: %v", m)
	}

	// Odd trailing key is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %d", len(m))
	}
}

func TestRequestFields(t *testing.T) {
	m := RequestFields("POST", "/charges", 201, 1500*time.Millisecond)
	if m[FieldMethod] != "POST" || m[FieldPath] != "/charges" {
		t.Errorf("unexpected map: %v", m)
	}
	if m[FieldStatus] != 201 {
		t.Errorf("expected status 201, got %v", m[FieldStatus])
	}
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}
