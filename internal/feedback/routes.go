package feedback

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/appraisal-api/internal/crud"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/employee/{employeeId}/reviewer/{reviewerId}", h.CreateWith(
		crud.Override{Field: "employee", Param: "employeeId"},
		crud.Override{Field: "reviewer", Param: "reviewerId"},
	))
	r.Get("/employee/{employeeId}", h.ListByParam("employee", "employeeId"))
	r.Get("/reviewer/{reviewerId}", h.ListByParam("reviewer", "reviewerId"))
	r.Get("/type/{feedbackType}", h.ListByParam("feedbackType", "feedbackType"))

	h.Mount(r)
	return r
}
