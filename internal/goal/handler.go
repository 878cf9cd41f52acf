package goal

import "github.com/saulo-duarte/appraisal-api/internal/crud"

type Handler struct {
	*crud.Handler[Goal]
}

func NewHandler(service Service) *Handler {
	return &Handler{Handler: crud.NewHandler[Goal](service, Fields.Override)}
}
