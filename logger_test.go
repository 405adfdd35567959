package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	log, err := OpenLogger(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	log.Info().Str("path", "/").Msg("request served")
	if err := log.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"message":"request served"`) {
		t.Errorf("log file %q is missing the message", line)
	}
	if !strings.Contains(line, `"path":"/"`) {
		t.Errorf("log file %q is missing the field", line)
	}
}

func TestOpenLoggerFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	for i := 0; i < 2; i++ {
		log, err := OpenLogger(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		log.Info().Msg("run")
		log.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("log file holds %d lines, want 2 (reopening must append)", got)
	}
}

func TestOpenLoggerStderr(t *testing.T) {
	log, err := OpenLogger("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// no sink to release, Close is still fine
	if err := log.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
