package server

import (
	"io/fs"
	"net/http"
	"strings"
)

// spaHandler serves static files from fsys with SPA fallback.
// Any path not matching a real file returns index.html.
func spaHandler(fsys fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}

		f, err := fsys.Open(path)
		if err != nil {
			// client-side routes
			path = "index.html"
		} else {
			f.Close()
		}

		http.ServeFileFS(w, r, fsys, path)
	}
}
