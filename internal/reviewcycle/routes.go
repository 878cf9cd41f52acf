package reviewcycle

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/status/{status}", h.ListByParam("status", "status"))

	h.Mount(r)
	return r
}
