package main

import (
	"path"
	"strings"
)

const defaultContentType = "application/octet-stream"

// contentTypeFor derives the Content-Type from the extension of the
// path the resolver ended on. Unknown or absent extensions fall back
// to application/octet-stream.
func contentTypeFor(p string) string {
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if t, ok := mimeTypes[ext]; ok {
		return t
	}
	return defaultContentType
}

var mimeTypes = map[string]string{
	"atom": "application/atom+xml",
	"bin":  "application/octet-stream",
	"bmp":  "image/x-ms-bmp",
	"css":  "text/css",
	"gif":  "image/gif",
	"htm":  "text/html",
	"html": "text/html",
	"ico":  "image/x-icon",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"js":   "application/javascript",
	"json": "application/json",
	"md":   "text/markdown",
	"mp3":  "audio/mpeg",
	"mp4":  "video/mp4",
	"pdf":  "application/pdf",
	"png":  "image/png",
	"rss":  "application/rss+xml",
	"svg":  "image/svg+xml",
	"txt":  "text/plain",
	"webm": "video/webm",
	"webp": "image/webp",
	"xml":  "text/xml",
	"zip":  "application/zip",
}
