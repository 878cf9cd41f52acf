package appraisal

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/store"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Appraisal, error)
	FindAll(ctx context.Context) ([]Appraisal, error)
	FindBy(ctx context.Context, attribute, value string) ([]Appraisal, error)
	Save(ctx context.Context, a *Appraisal) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

func NewRepository(db *gorm.DB) Repository {
	return store.New[Appraisal](db, store.Options{
		Entity:  EntityName,
		Preload: []string{"Employee.User", "ReviewCycle"},
		Attributes: map[string]store.Attribute{
			"employee":  {Column: "employee_id", Int: true},
			"cycle":     {Column: "review_cycle_id", Int: true},
			"status":    {Column: "status"},
			"cycleName": {Column: "cycle_name"},
		},
		Cascade: store.CascadeAppraisal,
	})
}
