package appraisal

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/appraisal-api/internal/crud"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/employee/{employeeId}/cycle/{cycleId}", h.CreateWith(
		crud.Override{Field: "employee", Param: "employeeId"},
		crud.Override{Field: "reviewCycle", Param: "cycleId"},
	))
	r.Get("/employee/{employeeId}", h.ListByParam("employee", "employeeId"))
	r.Get("/cycle/{cycleId}", h.ListByParam("cycle", "cycleId"))
	r.Get("/status/{status}", h.ListByParam("status", "status"))

	h.Mount(r)
	return r
}
