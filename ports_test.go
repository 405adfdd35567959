package main

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParsePort(t *testing.T) {
	check := func(input string, expect int) {
		t.Helper()
		port, err := ParsePort(input)
		if err != nil {
			t.Errorf("ParsePort(%q) failed: %v", input, err)
		}
		if port != expect {
			t.Errorf("ParsePort(%q) = %d, want %d", input, port, expect)
		}
	}
	check("8080", 8080)
	check("  8080\n", 8080) // prompt input comes with whitespace
	check("1", 1)
	check("65535", 65535)

	for _, input := range []string{"", "abc", "0", "-1", "65536", "80 80"} {
		if port, err := ParsePort(input); err == nil {
			t.Errorf("ParsePort(%q) = %d, want an error", input, port)
		}
	}
}

func TestCheckPortOpen(t *testing.T) {
	holder := NewServerSocket("127.0.0.1", 0, 1)
	if err := holder.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	port := holder.Port()

	if CheckPortOpen("127.0.0.1", port) {
		t.Errorf("port %d is held and should not check as open", port)
	}

	holder.Close()
	if !CheckPortOpen("127.0.0.1", port) {
		t.Errorf("port %d was released and should check as open", port)
	}
}

func TestRandomFreePort(t *testing.T) {
	log := &Logger{Logger: zerolog.Nop()}
	port := RandomFreePort("127.0.0.1", log)
	if port < dynamicPortMin || port > dynamicPortMax {
		t.Fatalf("port %d is outside the dynamic range %d-%d", port, dynamicPortMin, dynamicPortMax)
	}

	// the port must still be free to bind right after
	s := NewServerSocket("127.0.0.1", port, 1)
	if err := s.Open(); err != nil {
		t.Fatalf("picked port %d cannot be bound: %v", port, err)
	}
	s.Close()
}
