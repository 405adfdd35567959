package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// DefaultPort is where the server lands when the requested port
	// is invalid or taken.
	DefaultPort = 80

	// The IANA dynamic range, drawn from when DefaultPort is taken
	// too.
	dynamicPortMin = 49152
	dynamicPortMax = 65535
)

// ParsePort accepts a decimal port number in [1, 65535].
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("port %q is not a number", s)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d is out of range", port)
	}
	return port, nil
}

// CheckPortOpen reports whether a listener can bind the port right
// now, by binding it and letting it go again.
func CheckPortOpen(host string, port int) bool {
	probe := NewServerSocket(host, port, 1)
	if err := probe.Open(); err != nil {
		return false
	}
	probe.Close()
	return true
}

// RandomFreePort draws from the dynamic range until a port probes
// free. It does not return until one does.
func RandomFreePort(host string, log *Logger) int {
	for {
		port := dynamicPortMin + rand.Intn(dynamicPortMax-dynamicPortMin+1)
		log.Info().Int("port", port).Msg("probing random port")
		if CheckPortOpen(host, port) {
			return port
		}
	}
}
