package goal

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/appraisal"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/reference"
)

type GoalContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewGoalContainer(
	db *gorm.DB,
	employees reference.Finder[employee.EmployeeProfile],
	appraisals reference.Finder[appraisal.Appraisal],
) *GoalContainer {
	repo := NewRepository(db)
	service := NewService(repo, employees, appraisals)
	handler := NewHandler(service)

	return &GoalContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
