package main

import (
	"net"

	"github.com/rs/zerolog"
)

// connWorker serves exactly one accepted connection: one receive, one
// parse, one resolution, at most one send, then close. There is no
// keep-alive and no concurrency; the worker runs on the caller's
// goroutine.
type connWorker struct {
	conn     net.Conn
	bufSize  int
	resolver *FileResolver
	log      zerolog.Logger

	req     *Request
	content ResolvedContent
	err     error // filesystem failure carried out of the state machine
}

type stateFunc func(*connWorker) stateFunc

func newConnWorker(conn net.Conn, bufSize int, resolver *FileResolver, log zerolog.Logger) *connWorker {
	return &connWorker{conn: conn, bufSize: bufSize, resolver: resolver, log: log}
}

// run drives the worker through its states. Every path ends in
// finishConn, so the connection is closed no matter what happened
// before.
func (w *connWorker) run() error {
	for state := receiveRequest; state != nil; {
		state = state(w)
	}
	return w.err
}

// state funcs

func receiveRequest(w *connWorker) stateFunc {
	buf := make([]byte, w.bufSize)
	n, err := w.conn.Read(buf) // a single fixed-size read per request
	if err != nil {
		w.log.Debug().Err(err).Msg("receive failed, dropping connection")
		return finishConn
	}
	req, err := ParseRequest(buf[:n])
	if err != nil {
		w.log.Debug().Err(err).Msg("dropping unparseable request")
		return finishConn
	}
	w.req = req
	w.log.Debug().Stringer("request", req).Msg("request received")
	return resolveContent
}

func resolveContent(w *connWorker) stateFunc {
	content, err := w.resolver.Resolve(w.req.Path)
	if err != nil {
		w.err = err
		return finishConn
	}
	w.content = content
	return sendResponse
}

func sendResponse(w *connWorker) stateFunc {
	out, err := BuildResponse(w.content.Status, w.content.Path, w.content.Body)
	if err != nil {
		w.log.Error().Err(err).Msg("could not build response")
		return finishConn
	}
	if _, err := w.conn.Write(out); err != nil {
		w.log.Warn().Err(err).Msg("send failed")
		return finishConn
	}

	userAgent, err := w.req.Headers.Field("user agent")
	if err != nil {
		userAgent = "-"
	}
	w.log.Info().
		Int("status", w.content.Status).
		Str("method", w.req.Method).
		Str("path", w.req.Path).
		Str("user_agent", userAgent).
		Msg("request served")
	return finishConn
}

func finishConn(w *connWorker) stateFunc {
	w.conn.Close()
	return nil
}
