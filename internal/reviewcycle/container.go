package reviewcycle

import "gorm.io/gorm"

type ReviewCycleContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewReviewCycleContainer(db *gorm.DB) *ReviewCycleContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ReviewCycleContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
