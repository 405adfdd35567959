package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.BufferSize != 1024 {
		t.Errorf("BufferSize = %d, want 1024", cfg.BufferSize)
	}
	if cfg.Backlog != 5 {
		t.Errorf("Backlog = %d, want 5", cfg.Backlog)
	}
	ExpectEqual(t, ".", cfg.HomeDir)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeTestConfig(t, "server.toml", `
host = "127.0.0.1"
port = 8080
home_dir = "/srv/www"
page_404 = "404.html"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ExpectEqual(t, "127.0.0.1", cfg.Host)
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	ExpectEqual(t, "/srv/www", cfg.HomeDir)
	ExpectEqual(t, "404.html", cfg.Page404)

	// fields the file leaves out keep their defaults
	if cfg.BufferSize != 1024 {
		t.Errorf("BufferSize = %d, want the default 1024", cfg.BufferSize)
	}
	if cfg.Backlog != 5 {
		t.Errorf("Backlog = %d, want the default 5", cfg.Backlog)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeTestConfig(t, "server.yaml", `
host: 127.0.0.1
port: 8081
buffer_size: 4096
log_file: access.log
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ExpectEqual(t, "127.0.0.1", cfg.Host)
	if cfg.Port != 8081 {
		t.Errorf("Port = %d, want 8081", cfg.Port)
	}
	if cfg.BufferSize != 4096 {
		t.Errorf("BufferSize = %d, want 4096", cfg.BufferSize)
	}
	ExpectEqual(t, "access.log", cfg.LogFile)
}

func TestLoadConfigUnsupportedFormat(t *testing.T) {
	path := writeTestConfig(t, "server.ini", "port=80\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("an .ini file should not load")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("a missing file should not load")
	}
}
