package appraisal

import "github.com/saulo-duarte/appraisal-api/internal/crud"

type Handler struct {
	*crud.Handler[Appraisal]
}

func NewHandler(service Service) *Handler {
	return &Handler{Handler: crud.NewHandler[Appraisal](service, Fields.Override)}
}
