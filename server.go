package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultResponse404 = "<html><h1>404 File Not Found</h1></html>"

// WebServer serves files beneath a document root, one connection at a
// time. A slow client blocks everyone behind it; that is the deal.
type WebServer struct {
	cfg      Config
	sock     *ServerSocket
	resolver *FileResolver
	log      *Logger
}

// NewWebServer resolves the document root, loads the custom 404 page
// if one is configured, and wires the socket. Nothing is bound yet.
func NewWebServer(cfg Config, log *Logger) (*WebServer, error) {
	homedir, err := filepath.Abs(cfg.HomeDir)
	if err != nil {
		return nil, err
	}
	notFound := defaultResponse404
	if cfg.Page404 != "" {
		data, err := os.ReadFile(cfg.Page404)
		if err != nil {
			return nil, fmt.Errorf("loading 404 page: %w", err)
		}
		notFound = string(data)
	}
	return &WebServer{
		cfg:      cfg,
		sock:     NewServerSocket(cfg.Host, cfg.Port, cfg.Backlog),
		resolver: NewFileResolver(homedir, notFound),
		log:      log,
	}, nil
}

// Open binds and listens on the configured address.
func (s *WebServer) Open() error {
	if err := s.sock.Open(); err != nil {
		return err
	}
	s.log.Info().
		Str("addr", s.sock.Addr()).
		Str("homedir", s.resolver.root).
		Msg("opening socket connection")
	return nil
}

// Serve accepts and serves connections forever, strictly one after
// another. It returns when accepting fails (the socket was closed) or
// when a filesystem failure escapes a request.
func (s *WebServer) Serve() error {
	for {
		if err := s.serveRequest(); err != nil {
			return err
		}
	}
}

// Start is Open followed by Serve.
func (s *WebServer) Start() error {
	if err := s.Open(); err != nil {
		return err
	}
	return s.Serve()
}

// Stop closes the listening socket and any connection still being
// served. Calling it on a stopped server panics, as does starting an
// already started one; see ServerSocket.
func (s *WebServer) Stop() {
	s.sock.Close()
}

// Port reports the bound port once Open has succeeded.
func (s *WebServer) Port() int {
	return s.sock.Port()
}

func (s *WebServer) serveRequest() error {
	conn, err := s.sock.Accept()
	if err != nil {
		return err
	}
	w := newConnWorker(conn, s.cfg.BufferSize, s.resolver, s.log.Logger)
	err = w.run()
	s.sock.ConnDone()
	return err
}
