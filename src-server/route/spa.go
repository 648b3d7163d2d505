package route

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"planboard/src-server/utils"
)

// SPA serves the static web client, falling back to index.html for client
// side routes. It is skipped when no client directory is configured.
func SPA(muxer *http.ServeMux, as *utils.AppState) {
	if as.Config.GetStaticWebClientDir() == "" {
		return
	}
	dir := os.DirFS(as.Config.GetStaticWebClientDir())
	files := http.FS(dir)

	// read once; every fallback gets its own reader over the same bytes
	indexBytes, err := fs.ReadFile(dir, "index.html")
	if err != nil {
		slog.Error("can't read index.html", "error", err)
		return
	}
	indexModTime := time.Now()
	if indexFileStat, err := fs.Stat(dir, "index.html"); err == nil {
		indexModTime = indexFileStat.ModTime()
	}
	serveIndex := func(w http.ResponseWriter, r *http.Request) {
		http.ServeContent(w, r, "index.html", indexModTime, bytes.NewReader(indexBytes))
	}

	muxer.HandleFunc("GET /{filepath...}", func(w http.ResponseWriter, r *http.Request) {
		filepath := filepath.Clean(r.PathValue("filepath"))
		switch filepath {
		case ".":
			filepath = "index.html"
		case "calendar", "notes", "todo":
			filepath = filepath + "/index.html"
		case "404":
			filepath = "404.html"
		}

		file, err := files.Open(filepath)
		if err != nil {
			serveIndex(w, r)
			return
		}
		defer file.Close()

		stat, err := file.Stat()
		if err != nil || stat.IsDir() {
			serveIndex(w, r)
			return
		}

		http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
	})
}
