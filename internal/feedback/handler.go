package feedback

import "github.com/saulo-duarte/appraisal-api/internal/crud"

type Handler struct {
	*crud.Handler[Feedback]
}

func NewHandler(service Service) *Handler {
	return &Handler{Handler: crud.NewHandler[Feedback](service, Fields.Override)}
}
