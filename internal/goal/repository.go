package goal

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/store"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Goal, error)
	FindAll(ctx context.Context) ([]Goal, error)
	FindBy(ctx context.Context, attribute, value string) ([]Goal, error)
	Save(ctx context.Context, g *Goal) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

func NewRepository(db *gorm.DB) Repository {
	return store.New[Goal](db, store.Options{
		Entity:  EntityName,
		Preload: []string{"Employee.User", "Appraisal"},
		Attributes: map[string]store.Attribute{
			"employee":  {Column: "employee_id", Int: true},
			"appraisal": {Column: "appraisal_id", Int: true},
			"status":    {Column: "status"},
			"createdBy": {Column: "created_by"},
			"category":  {Column: "category"},
			"priority":  {Column: "priority"},
		},
	})
}
