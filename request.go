package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ErrMalformedRequest reports raw bytes that do not form a request
// line plus header lines. The connection that sent them gets no
// response.
var ErrMalformedRequest = errors.New("malformed request")

// ParseRequest turns the raw bytes of a single receive into a Request.
// The bytes are decoded as UTF-8 with invalid sequences substituted by
// U+FFFD, so decoding itself never fails; lines are trimmed and empty
// lines dropped. The first line must carry exactly method, path and
// version; every following line must be a "Name: value" pair.
func ParseRequest(data []byte) (*Request, error) {
	text, _ := unicode.UTF8.NewDecoder().String(string(data))

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no request line", ErrMalformedRequest)
	}

	fields := strings.Split(lines[0], " ")
	if len(fields) != 3 || fields[0] == "" || fields[1] == "" || fields[2] == "" {
		return nil, fmt.Errorf("%w: request line %q", ErrMalformedRequest, lines[0])
	}
	req := &Request{
		Method:  fields[0],
		Path:    fields[1],
		Version: fields[2],
		Headers: make(HeaderMap, len(lines)-1),
	}

	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: header line %q", ErrMalformedRequest, line)
		}
		req.Headers[canonicalFieldName(name)] = value
	}
	return req, nil
}
