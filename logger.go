package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging collaborator handed to the server at
// construction time. It owns its sink: OpenLogger acquires it and
// Close releases it.
type Logger struct {
	zerolog.Logger
	sink *os.File
}

// OpenLogger opens the log sink. An empty path means human-readable
// output on stderr; otherwise JSON lines are appended to the file at
// path.
func OpenLogger(path string) (*Logger, error) {
	if path == "" {
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return &Logger{Logger: zerolog.New(console).With().Timestamp().Logger()}, nil
	}
	sink, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{
		Logger: zerolog.New(sink).With().Timestamp().Logger(),
		sink:   sink,
	}, nil
}

// Close releases the sink. Safe to call when logging to stderr.
func (l *Logger) Close() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.Close()
}
