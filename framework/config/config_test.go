package config_test

import (
	"testing"

	"github.com/km-arc/go-box/framework/config"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "GoBox"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("App.Debug default should be true")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "BoxApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "BoxApp" {
		t.Errorf("App.Name: got %q, want 'BoxApp'", cfg.App.Name)
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q, want 'production'", cfg.App.Env)
	}
	if cfg.App.Debug {
		t.Error("App.Debug should be false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q, want 'debug'", cfg.Log.Level)
	}
}

// ── Typed getters ────────────────────────────────────────────────────────────

func TestGet_FallsBackWhenUnset(t *testing.T) {
	if got := config.Get("GOBOX_MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q, want 'fallback'", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("GOBOX_INT", "42")

	if got := config.GetInt("GOBOX_INT", 7); got != 42 {
		t.Errorf("set: got %d, want 42", got)
	}
	if got := config.GetInt("GOBOX_INT_MISSING", 7); got != 7 {
		t.Errorf("missing: got %d, want 7", got)
	}

	t.Setenv("GOBOX_INT", "not-a-number")
	if got := config.GetInt("GOBOX_INT", 7); got != 7 {
		t.Errorf("invalid: got %d, want 7", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("GOBOX_BOOL", "true")

	if !config.GetBool("GOBOX_BOOL", false) {
		t.Error("set: got false, want true")
	}
	if config.GetBool("GOBOX_BOOL_MISSING", false) {
		t.Error("missing: got true, want false")
	}
}
