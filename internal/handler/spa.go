package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPA returns a handler that serves the built single-page app from dir.
// Paths that do not match a file fall back to index.html so client-side
// routing keeps working on hard refresh.
func SPA(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(strings.TrimPrefix(r.URL.Path, "/")))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}
