package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountStatic serves the browser front-end from dir at the router root.
// The front-end is a thin collaborator; the API surface under /api stays
// independent of it.
func MountStatic(r chi.Router, dir string) {
	fs := http.FileServer(http.Dir(dir))
	r.Handle("/*", fs)
}
