package habit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Patch("/{id}/archive", h.Archive)
	r.Patch("/{id}/unarchive", h.Unarchive)

	return r
}
