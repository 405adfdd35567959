package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Status codes this server can produce. Anything else is a bug in the
// caller, not a runtime condition.
const (
	StatusOK       = 200
	StatusNotFound = 404
)

var statusPhrases = map[int]string{
	StatusOK:       "Ok",
	StatusNotFound: "File not found",
}

// ErrFieldMissing reports a header lookup for a field that was never
// sent. A field that was sent with an empty value is not an error.
var ErrFieldMissing = errors.New("no such header field")

// HeaderMap keys are canonical field names. Not map[string][]string,
// unlike http.Header: repeated fields keep the last value.
type HeaderMap map[string]string

// Field looks up a header by any spelling of its name ("user agent",
// "user_agent" and "User-Agent" are the same field).
func (h HeaderMap) Field(name string) (string, error) {
	canonical := canonicalFieldName(name)
	value, ok := h[canonical]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldMissing, canonical)
	}
	return value, nil
}

// canonicalFieldName converts a field name to Title-Case-with-dashes:
// every dash-separated component capitalized, underscores and spaces
// treated as dashes. "user-AGENT" and "user_agent" both map to
// "User-Agent".
func canonicalFieldName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	first := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == ' ':
			b.WriteRune('-')
			first = true
		case first:
			b.WriteRune(unicode.ToUpper(r))
			first = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Request is one parsed browser request. Immutable once built.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers HeaderMap
}

func (r *Request) String() string {
	return fmt.Sprintf("<Request %s %s %s>", r.Method, r.Path, r.Version)
}

// ResolvedContent is what the resolver hands to the response builder:
// a body, a status from the phrase table, and the request-side path the
// resolution ended on (it drives Content-Type, for 404s too).
type ResolvedContent struct {
	Body   string
	Status int
	Path   string
}
