package main

import (
	"fmt"
	"net"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// ServerSocket owns the listening socket and the one connection being
// served. Open and Close are a strict pair: opening an open socket or
// closing a closed one is a programmer error and panics. The mutex is
// there for Stop, which may run on another goroutine than Serve.
type ServerSocket struct {
	host    string
	port    int
	backlog int

	mu   sync.Mutex
	ln   net.Listener
	conn net.Conn // connection currently being served, if any
}

func NewServerSocket(host string, port, backlog int) *ServerSocket {
	return &ServerSocket{host: host, port: port, backlog: backlog}
}

func (s *ServerSocket) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := "closed"
	if s.ln != nil {
		state = "open"
	}
	return fmt.Sprintf("<%s ServerSocket %s:%d>", state, s.host, s.port)
}

// Open binds and listens. A bind or listen failure releases the
// socket before the error is returned, so the caller may retry on
// another port.
func (s *ServerSocket) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		panic("ServerSocket is already open")
	}
	ln, err := listenBacklog(s.host, s.port, s.backlog)
	if err != nil {
		return err
	}
	s.ln = ln
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		s.port = addr.Port // resolves port 0 to the bound port
	}
	return nil
}

// Close tears down the still-open connection, if any, then the
// listener. A blocked Accept returns net.ErrClosed.
func (s *ServerSocket) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		panic("ServerSocket was already closed")
	}
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.ln.Close()
	s.ln = nil
}

// Accept blocks for the next connection and registers it as current.
func (s *ServerSocket) Accept() (net.Conn, error) {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		panic("ServerSocket must be open to accept connections")
	}
	conn, err := ln.Accept()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	return conn, nil
}

// ConnDone deregisters the current connection after its worker closed
// it.
func (s *ServerSocket) ConnDone() {
	s.mu.Lock()
	s.conn = nil
	s.mu.Unlock()
}

func (s *ServerSocket) Port() int {
	return s.port
}

func (s *ServerSocket) Addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// listenBacklog builds the listener by hand so the configured backlog
// actually reaches listen(2); net.Listen always passes the system
// maximum.
func listenBacklog(host string, port, backlog int) (net.Listener, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}
	unix.CloseOnExec(fd)

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("setsockopt", err)
	}

	sa := &unix.SockaddrInet4{Port: port}
	if host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			unix.Close(fd)
			return nil, fmt.Errorf("invalid host %q", host)
		}
		ip4 := ip.To4()
		if ip4 == nil {
			unix.Close(fd)
			return nil, fmt.Errorf("host %q is not an IPv4 address", host)
		}
		copy(sa.Addr[:], ip4)
	}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("bind", err)
	}
	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("listen", err)
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("setnonblock", err)
	}
	f := os.NewFile(uintptr(fd), "listener")
	ln, err := net.FileListener(f)
	f.Close() // FileListener duplicated the fd
	return ln, err
}
