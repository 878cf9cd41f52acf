package reviewcycle

import "github.com/saulo-duarte/appraisal-api/internal/crud"

type Handler struct {
	*crud.Handler[ReviewCycle]
}

func NewHandler(service Service) *Handler {
	return &Handler{Handler: crud.NewHandler[ReviewCycle](service, Fields.Override)}
}
