package handlers

import (
	"bytes"
	"io"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
)

const indexFile = "index.html"

// SPAHandler serves the frontend bundle. Paths that do not name a file fall
// back to index.html so client-side routing can take over, except under /api.
type SPAHandler struct {
	assets fs.FS
}

func NewSPAHandler(assets fs.FS) *SPAHandler {
	return &SPAHandler{assets: assets}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)

	if name := strings.TrimPrefix(urlPath, "/"); name != "" {
		if h.serveFile(w, r, name) {
			return
		}
	}

	if strings.HasPrefix(urlPath, "/api") {
		NotFound(w, r)
		return
	}

	if !h.serveFile(w, r, indexFile) {
		log.Printf("SPA entry document %s is missing from the static bundle", indexFile)
		NotFound(w, r)
	}
}

// serveFile writes the named asset and reports whether it existed.
func (h *SPAHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	info, err := fs.Stat(h.assets, name)
	if err != nil {
		return false
	}
	if info.IsDir() {
		name = path.Join(name, indexFile)
		if info, err = fs.Stat(h.assets, name); err != nil || info.IsDir() {
			return false
		}
	}

	f, err := h.assets.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return false
		}
		content = bytes.NewReader(data)
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
	return true
}
