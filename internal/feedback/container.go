package feedback

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/reference"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

type FeedbackContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewFeedbackContainer(
	db *gorm.DB,
	employees reference.Finder[employee.EmployeeProfile],
	users reference.Finder[user.User],
	defaultReviewerID int64,
) *FeedbackContainer {
	repo := NewRepository(db)
	service := NewService(repo, employees, users, defaultReviewerID)
	handler := NewHandler(service)

	return &FeedbackContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
