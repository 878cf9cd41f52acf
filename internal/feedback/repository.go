package feedback

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/store"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Feedback, error)
	FindAll(ctx context.Context) ([]Feedback, error)
	FindBy(ctx context.Context, attribute, value string) ([]Feedback, error)
	Save(ctx context.Context, f *Feedback) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

func NewRepository(db *gorm.DB) Repository {
	return store.New[Feedback](db, store.Options{
		Entity:  EntityName,
		Preload: []string{"Employee.User", "Reviewer"},
		Attributes: map[string]store.Attribute{
			"employee":     {Column: "employee_id", Int: true},
			"reviewer":     {Column: "reviewer_id", Int: true},
			"feedbackType": {Column: "feedback_type"},
			"rating":       {Column: "rating", Int: true},
		},
	})
}
