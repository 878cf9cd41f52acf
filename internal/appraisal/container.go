package appraisal

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/reference"
	"github.com/saulo-duarte/appraisal-api/internal/reviewcycle"
)

type AppraisalContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewAppraisalContainer(
	db *gorm.DB,
	employees reference.Finder[employee.EmployeeProfile],
	cycles reference.Finder[reviewcycle.ReviewCycle],
) *AppraisalContainer {
	repo := NewRepository(db)
	service := NewService(repo, employees, cycles)
	handler := NewHandler(service)

	return &AppraisalContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
