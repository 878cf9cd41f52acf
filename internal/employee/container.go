package employee

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/reference"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

type EmployeeContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewEmployeeContainer(db *gorm.DB, users reference.Finder[user.User]) *EmployeeContainer {
	repo := NewRepository(db)
	service := NewService(repo, users)
	handler := NewHandler(service)

	return &EmployeeContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
