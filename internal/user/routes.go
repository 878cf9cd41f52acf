package user

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/appraisal-api/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.Post("/logout", auth.NewHandler().Logout)
	r.Post("/reset-password", h.ResetPassword)
	r.Get("/health", h.Health)
	r.Get("/role/{role}", h.ListByRole)

	h.Mount(r)
	return r
}
