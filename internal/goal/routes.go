package goal

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/appraisal-api/internal/crud"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	employeeParam := crud.Override{Field: "employee", Param: "employeeId"}
	r.Post("/employee/{employeeId}", h.CreateWith(employeeParam))
	r.Post("/employee/{employeeId}/appraisal/{appraisalId}", h.CreateWith(
		employeeParam,
		crud.Override{Field: "appraisal", Param: "appraisalId"},
	))
	r.Get("/employee/{employeeId}", h.ListByParam("employee", "employeeId"))
	r.Get("/appraisal/{appraisalId}", h.ListByParam("appraisal", "appraisalId"))
	r.Get("/status/{status}", h.ListByParam("status", "status"))

	h.Mount(r)
	return r
}
