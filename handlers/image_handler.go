package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

type ImageHandler struct {
	Dir string
}

// ServeBookImage handles GET /api/images/books/{file}. The filename is
// reduced to its base name so the lookup stays inside Dir.
func (h *ImageHandler) ServeBookImage(w http.ResponseWriter, r *http.Request, filename string) {
	name := path.Base(filename)
	if name == "." || name == "/" {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	full := filepath.Join(h.Dir, name)
	if _, err := os.Stat(full); err != nil {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	http.ServeFile(w, r, full)
}
