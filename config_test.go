package fintrex

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fintrex.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
url: https://staging.fintrex.ai/
addr: ":8080"
environment: development
session_secret: s3cret
notify_to: team@fintrex.ai
notify_timeout: 3s
metrics_enabled: true
waitlist_window: 30s
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.URL != "https://staging.fintrex.ai" {
		t.Errorf("URL = %q, trailing slash not trimmed", cfg.URL)
	}
	if cfg.Addr != ":8080" || cfg.Environment != EnvDevelopment || cfg.NotifyTo != "team@fintrex.ai" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.NotifyTimeout != 3*time.Second || cfg.WaitlistWindow != 30*time.Second {
		t.Errorf("durations = %v, %v", cfg.NotifyTimeout, cfg.WaitlistWindow)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled not read")
	}
	if cfg.Name != "Fintrex" || cfg.WaitlistLimit != 5 || cfg.StaticDir != "public" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "session_secret: from-file\naddr: \":8080\"\n")
	t.Setenv("FINTREX_SESSION_SECRET", "from-env")
	t.Setenv("FINTREX_COOKIE_SECURE", "true")
	t.Setenv("FINTREX_NOTIFY_TIMEOUT", "2s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SessionSecret != "from-env" {
		t.Errorf("SessionSecret = %q, want env value", cfg.SessionSecret)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, file value lost", cfg.Addr)
	}
	if !cfg.CookieSecure || cfg.NotifyTimeout != 2*time.Second {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("FINTREX_SESSION_SECRET", "only-env")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.URL != "https://fintrex.ai" || cfg.NotifyTo != "hello@fintrex.ai" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want error
	}{
		{"missing secret", "url: https://fintrex.ai\n", nil, ErrMissingSecret},
		{"relative url", "url: fintrex.ai\nsession_secret: x\n", nil, ErrInvalidURL},
		{"bad environment", "environment: staging\nsession_secret: x\n", nil, ErrInvalidEnvironment},
		{"negative limit", "waitlist_limit: -1\nsession_secret: x\n", nil, ErrInvalidLimit},
		{"negative window", "waitlist_window: -1m\nsession_secret: x\n", nil, ErrInvalidDuration},
		{"negative notify timeout", "notify_timeout: -5s\nsession_secret: x\n", nil, ErrInvalidDuration},
		{"negative timeout from env", "session_secret: x\n", map[string]string{"FINTREX_NOTIFY_TIMEOUT": "-1s"}, ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FINTREX_SESSION_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadConfig error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "session_secret: x\nadmin_password: nope\n")); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestLoadConfigBadEnvValue(t *testing.T) {
	t.Setenv("FINTREX_SESSION_SECRET", "x")
	t.Setenv("FINTREX_METRICS", "maybe")
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected an error for a non-boolean FINTREX_METRICS")
	}
}

func TestEmailJSConfigured(t *testing.T) {
	cfg := SiteConfig{}
	if _, ok := cfg.EmailJS(); ok {
		t.Error("EmailJS reported configured without keys")
	}
	cfg.EmailJSServiceID, cfg.EmailJSPublicKey = "service_x", "pk"
	if got, ok := cfg.EmailJS(); !ok || got.ServiceID != "service_x" {
		t.Errorf("EmailJS() = %+v, %v", got, ok)
	}
}

func TestSetupValidatesConfig(t *testing.T) {
	a := New(SiteConfig{SessionSecret: "x", WaitlistWindow: -time.Minute}, DefaultViews())
	if err := a.Setup(); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("Setup error = %v, want ErrInvalidDuration", err)
	}
	if a.limiter != nil {
		t.Error("limiter started for an invalid config")
	}
}
