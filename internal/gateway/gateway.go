// Package gateway serves static assets from a backing store, answering
// 404 whenever the store cannot produce the asset.
package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned by a Fetcher for unknown assets.
var ErrNotFound = errors.New("asset not found")

// Fetcher retrieves the asset a request names.
type Fetcher interface {
	Fetch(r *http.Request) (*http.Response, error)
}

// Gateway forwards requests to a Fetcher and copies the result verbatim.
type Gateway struct {
	backend Fetcher
	log     *zap.Logger
}

// New creates a gateway over backend.
func New(backend Fetcher, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{backend: backend, log: log}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp, err := g.backend.Fetch(r)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.log.Warn("asset fetch failed", zap.String("path", r.URL.Path), zap.Error(err))
		}
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	defer resp.Body.Close()

	for k, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Debug("asset copy interrupted", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// FSFetcher reads assets from a file system, stripping Prefix from the
// request path.
type FSFetcher struct {
	FS     fs.FS
	Prefix string
}

// Fetch resolves r against the file system.
func (f FSFetcher) Fetch(r *http.Request) (*http.Response, error) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return nil, fmt.Errorf("method %s not supported", r.Method)
	}
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), path.Clean("/"+f.Prefix))
	name = strings.TrimPrefix(name, "/")
	if name == "" || !fs.ValidPath(name) {
		return nil, ErrNotFound
	}

	data, err := fs.ReadFile(f.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
	}

	header := http.Header{}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		header.Set("Content-Type", ct)
	}
	header.Set("Content-Length", strconv.Itoa(len(data)))
	body := io.NopCloser(bytes.NewReader(data))
	if r.Method == http.MethodHead {
		body = http.NoBody
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       body,
		Request:    r,
	}, nil
}
