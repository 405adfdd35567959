package main

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

const indexFile = "index.html"

var errIsDirectory = errors.New("is a directory")

// FileResolver maps request paths to files beneath a document root.
// A path that names a directory retries once with index.html appended;
// a path with no backing file resolves to the 404 body. Request paths
// are rooted and cleaned before joining, so ".." segments cannot climb
// out of the root.
type FileResolver struct {
	root     string // absolute document root
	notFound string // body served with status 404
}

func NewFileResolver(root, notFound string) *FileResolver {
	return &FileResolver{root: root, notFound: notFound}
}

// Resolve returns the content for a request path. Not-found is a
// normal 404 result; the error return is reserved for filesystem
// failures that have no per-request answer.
func (fr *FileResolver) Resolve(reqPath string) (ResolvedContent, error) {
	body, status, err := fr.load(reqPath)
	if errors.Is(err, errIsDirectory) {
		reqPath = path.Join(reqPath, indexFile)
		body, status, err = fr.load(reqPath)
	}
	if err != nil {
		return ResolvedContent{}, err
	}
	return ResolvedContent{Body: body, Status: status, Path: reqPath}, nil
}

func (fr *FileResolver) load(reqPath string) (string, int, error) {
	full := fr.fullPath(reqPath)
	info, err := os.Stat(full)
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, unix.ENOTDIR):
		// ENOTDIR means a path component is a regular file, so the
		// target cannot exist either.
		return fr.notFound, StatusNotFound, nil
	case err != nil:
		return "", 0, err
	case info.IsDir():
		return "", 0, errIsDirectory
	}

	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) { // raced a deletion
		return fr.notFound, StatusNotFound, nil
	}
	if err != nil {
		return "", 0, err
	}
	return string(data), StatusOK, nil
}

// fullPath joins the request path beneath the root the way http.Dir
// does: rooting at "/" first makes path.Clean swallow any ".."
// prefix, so the result never escapes the root.
func (fr *FileResolver) fullPath(reqPath string) string {
	clean := path.Clean("/" + strings.TrimLeft(reqPath, "/"))
	return filepath.Join(fr.root, filepath.FromSlash(clean))
}
