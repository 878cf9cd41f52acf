package employee

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/appraisal-api/internal/crud"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/user/{userId}", h.CreateWith(crud.Override{Field: "user", Param: "userId"}))
	r.Get("/user/{userId}", h.ListByParam("user", "userId"))

	h.Mount(r)
	return r
}
