package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if errWrite := os.WriteFile(path, []byte(body), 0o600); errWrite != nil {
		t.Fatalf("write config: %v", errWrite)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, errLoad := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if errLoad != nil {
		t.Fatalf("load: %v", errLoad)
	}
	if cfg.Server.Addr != DefaultListenAddr {
		t.Fatalf("expected addr %q, got %q", DefaultListenAddr, cfg.Server.Addr)
	}
	if cfg.Session.TTL != DefaultSessionTTL {
		t.Fatalf("expected ttl %s, got %s", DefaultSessionTTL, cfg.Session.TTL)
	}
}

func TestLoadYAMLAndNormalizeAdminEmail(t *testing.T) {
	path := writeConfig(t, `
database:
  dsn: "file::memory:"
session:
  secret: "0123456789abcdef0123456789abcdef"
  ttl: 48h
admin:
  email: "  Admin@Ocevave  "
  password: "admin123"
`)
	cfg, errLoad := Load(path)
	if errLoad != nil {
		t.Fatalf("load: %v", errLoad)
	}
	if cfg.Admin.Email != "admin@ocevave" {
		t.Fatalf("expected normalized admin email, got %q", cfg.Admin.Email)
	}
	if cfg.Session.TTL != 48*time.Hour {
		t.Fatalf("expected ttl 48h, got %s", cfg.Session.TTL)
	}
	if errValidate := cfg.Validate(); errValidate != nil {
		t.Fatalf("validate: %v", errValidate)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "database:\n  dsn: \"file:one.db\"\n")
	t.Setenv("OCEVAVE_DATABASE_DSN", "file:two.db")
	t.Setenv("OCEVAVE_REDIS_ADDR", "127.0.0.1:6379")

	cfg, errLoad := Load(path)
	if errLoad != nil {
		t.Fatalf("load: %v", errLoad)
	}
	if cfg.Database.DSN != "file:two.db" {
		t.Fatalf("expected env dsn, got %q", cfg.Database.DSN)
	}
	if !cfg.Redis.Enabled() {
		t.Fatalf("expected redis enabled")
	}
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := Default()
	cfg.Session.Secret = "short"
	cfg.Admin.Email = "admin@ocevave"
	cfg.Admin.Password = "admin123"
	errValidate := cfg.Validate()
	if errValidate == nil || !strings.Contains(errValidate.Error(), "session.secret") {
		t.Fatalf("expected session secret error, got %v", errValidate)
	}
}

func TestResolveConfigPathPrefersExplicitPath(t *testing.T) {
	t.Setenv("OCEVAVE_CONFIG", "/etc/ocevave/config.yaml")
	if got := ResolveConfigPath("./custom.yaml"); got != "custom.yaml" {
		t.Fatalf("expected custom.yaml, got %q", got)
	}
	if got := ResolveConfigPath(""); got != "/etc/ocevave/config.yaml" {
		t.Fatalf("expected env path, got %q", got)
	}
}
