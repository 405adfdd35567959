package main

import (
	"bytes"
	"errors"
	"fmt"
)

// serverName goes out in the Server header of every response.
const serverName = "SimpleGo Server"

// ErrUnknownStatus reports a status code outside the phrase table.
// Only 200 and 404 are ever produced, so hitting this is a bug.
var ErrUnknownStatus = errors.New("unknown status code")

// BuildResponse serializes one complete response: status line,
// Content-Type derived from resolvedPath, Server header, blank line,
// body. The result is written to the connection in a single send.
func BuildResponse(status int, resolvedPath, body string) ([]byte, error) {
	phrase, ok := statusPhrases[status]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, status)
	}

	var b bytes.Buffer
	b.Grow(len(body) + 128)
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\n", status, phrase)
	fmt.Fprintf(&b, "Content-Type: %s\n", contentTypeFor(resolvedPath))
	fmt.Fprintf(&b, "Server: %s\n", serverName)
	b.WriteString("\n")
	b.WriteString(body)
	return b.Bytes(), nil
}
