package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shadowme/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.CSS.Debounce != 10*time.Millisecond {
		t.Fatalf("expected 10ms debounce, got %s", cfg.CSS.Debounce)
	}
	if cfg.Storage.Dir == "" {
		t.Fatal("expected a default storage dir")
	}
	if got := cfg.Server.Addr(); got != ":8080" {
		t.Fatalf("expected :8080, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "server:\n  host: 127.0.0.1\n  port: 9000\ncss:\n  debounce: 25ms\nstorage:\n  dir: /tmp/shadows\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr())
	}
	if cfg.CSS.Debounce != 25*time.Millisecond {
		t.Fatalf("expected 25ms, got %s", cfg.CSS.Debounce)
	}
	if cfg.Storage.Dir != "/tmp/shadows" {
		t.Fatalf("unexpected dir %q", cfg.Storage.Dir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHADOWME_SERVER_PORT", "7070")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	os.WriteFile(path, []byte("server: [unterminated"), 0644)
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	in := &config.Config{
		Server:  config.ServerConfig{Host: "localhost", Port: 8181},
		Storage: config.StorageConfig{Dir: "/data"},
		CSS:     config.CSSConfig{Debounce: 40 * time.Millisecond},
	}
	if err := config.Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Fatalf("expected %+v, got %+v", *in, *out)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/x"); got != filepath.Join(home, "x") {
		t.Fatalf("unexpected expansion %q", got)
	}
	if got := config.ExpandHome("/abs"); got != "/abs" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
