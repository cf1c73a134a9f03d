package config_test

import (
	"os"
	"testing"

	"github.com/km-arc/go-dfc-http/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// clearEnv unsets keys for the duration of the test. godotenv writes into the
// process environment, so this also undoes anything a .env file loads.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

var allKeys = []string{
	"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_PORT",
	"LOG_LEVEL", "LOG_SERVICE", "DSS_GENERATE_CORRELATION_ID",
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, allKeys...)
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "DfcHttp"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Service", cfg.Log.Service, "DfcHttp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("expected App.Debug to default to true")
	}
	if !cfg.DSS.GenerateCorrelationID {
		t.Error("expected DSS.GenerateCorrelationID to default to true")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("APP_NAME", "ActionPlansApi")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "ActionPlansApi" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "ActionPlansApi")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Service != "ActionPlansApi" {
		t.Errorf("Log.Service should follow App.Name, got %q", cfg.Log.Service)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t, allKeys...)
	cfg := config.Load("testdata/dss.env")

	if cfg.App.Name != "CustomerApi" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "CustomerApi")
	}
	if cfg.App.Port != "7071" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "7071")
	}
	if cfg.DSS.GenerateCorrelationID {
		t.Error("expected DSS.GenerateCorrelationID to be false from env file")
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("APP_PORT", "8080")

	cfg := config.Load("testdata/dss.env")
	if cfg.App.Port != "8080" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "8080")
	}
}

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	clearEnv(t, allKeys...)
	cfg := config.Load("testdata/does-not-exist.env")
	if cfg.App.Name != "DfcHttp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "DfcHttp")
	}
}

func TestLoad_AppDebugFalse(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("APP_DEBUG", "false")
	cfg := config.Load("testdata/empty.env")
	if cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "hello")
	if got := config.Get("CUSTOM_KEY", "default"); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestGet_ReturnsFallback(t *testing.T) {
	clearEnv(t, "MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("got %d want %d", got, 42)
	}
	t.Setenv("SOME_INT", "notanint")
	if got := config.GetInt("SOME_INT", 99); got != 99 {
		t.Errorf("got %d want %d", got, 99)
	}
}

func TestGetBool(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		t.Setenv("BOOL_KEY", val)
		if !config.GetBool("BOOL_KEY", false) {
			t.Errorf("expected true for %q", val)
		}
	}
	t.Setenv("BOOL_KEY", "notabool")
	if !config.GetBool("BOOL_KEY", true) {
		t.Error("expected fallback true")
	}
}
