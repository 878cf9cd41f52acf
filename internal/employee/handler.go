package employee

import "github.com/saulo-duarte/appraisal-api/internal/crud"

type Handler struct {
	*crud.Handler[EmployeeProfile]
}

func NewHandler(service Service) *Handler {
	return &Handler{Handler: crud.NewHandler[EmployeeProfile](service, Fields.Override)}
}
